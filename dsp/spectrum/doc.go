// Package spectrum provides magnitude and power spectra of real signals.
// The element-wise stages run on the vecmath kernels selected for the
// running CPU.
package spectrum
