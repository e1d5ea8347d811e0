// Released under an MIT license. See LICENSE.

//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package process

// AwaitForeground does nothing on platforms without process groups.
func AwaitForeground() error {
	return nil
}
