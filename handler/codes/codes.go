package codes

import (
	"beanstalk/core"

	"github.com/twitchtv/twirp"
)

// Get get error code
func Get(code twirp.ErrorCode) int {
	switch code {
	case twirp.InvalidArgument:
		return int(core.ErrInvalidArgument)
	default:
		return twirp.ServerHTTPStatusFromErrorCode(code)
	}
}
