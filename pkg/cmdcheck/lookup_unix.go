//go:build !windows

package cmdcheck

const lookupCommand = "which"
