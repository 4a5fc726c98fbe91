package domain

import "errors"

var (
	// Record errors
	ErrAssetNotFound       = errors.New("asset not found")
	ErrBankAccountNotFound = errors.New("bank account not found")
	ErrLiabilityNotFound   = errors.New("liability not found")
	ErrSnapshotNotFound    = errors.New("snapshot not found")
	ErrUserNotFound        = errors.New("user not found")

	// ErrNotOwner is returned when a user acts on another user's record.
	ErrNotOwner = errors.New("record belongs to another user")

	// ErrBankAccountNameTaken is returned when the deployment-wide unique
	// account name is already in use.
	ErrBankAccountNameTaken = errors.New("bank account name already in use")
)
