//go:build !unix

package install

import "os"

func signalStatus(*os.ProcessState) (int, string, bool) {
	return 0, "", false
}
