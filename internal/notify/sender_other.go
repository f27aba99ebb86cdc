//go:build !darwin && !linux && !windows

package notify

func newPlatformSender() Sender {
	return newBeeepSender()
}
