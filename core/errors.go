package core

import "strconv"

// ErrorCode int
type ErrorCode int

const (
	// ErrUnknown unkown
	ErrUnknown ErrorCode = 100000
	// ErrInvalidArgument invalid argument
	ErrInvalidArgument ErrorCode = 100001

	// ErrProposalNotFound no proposal
	ErrProposalNotFound ErrorCode = 100100
	// ErrSpaceNotAllowed space not configured
	ErrSpaceNotAllowed ErrorCode = 100101
	// ErrQuorumUnavailable total stalk can not be read
	ErrQuorumUnavailable ErrorCode = 100102
	// ErrSnapshotHub snapshot hub responded with errors
	ErrSnapshotHub ErrorCode = 100103
)

func (e ErrorCode) String() string {
	return strconv.Itoa(int(e))
}

func (e ErrorCode) Error() string {
	return e.String()
}
