//go:build !linux

package probe

func osName() string {
	return genericOSName()
}

func kernel() string {
	return ""
}
