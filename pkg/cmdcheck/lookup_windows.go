//go:build windows

package cmdcheck

const lookupCommand = "where"
