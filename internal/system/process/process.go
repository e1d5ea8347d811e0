// Released under an MIT license. See LICENSE.

// Package process keeps an interactive sublisp from reading the terminal
// while it is in the background.
package process
