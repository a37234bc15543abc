//go:build !darwin && !windows

package paths

const appDirName = "avrora"
