// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
//
// Every operation is atomic at single-document granularity only; multi-step
// workflows in the usecase layer are sequential dependent calls.
package repository

import "errors"

// Sentinel errors shared across repositories. Implementations translate
// store-level failures into these so the usecase layer never sees driver
// types.
var (
	// ErrInvalidID is returned when an identifier cannot be parsed into a
	// store object id. Reported to clients as a validation error, distinct
	// from not-found.
	ErrInvalidID = errors.New("invalid document id")

	// ErrUserNotFound is returned when a user lookup misses.
	ErrUserNotFound = errors.New("user not found")

	// ErrAgreementNotFound is returned when an agreement lookup misses.
	ErrAgreementNotFound = errors.New("agreement not found")

	// ErrDuplicateAgreement is returned when inserting a pending agreement
	// for a (userEmail, apartmentNo) pair that already has one. Enforced by
	// a partial unique index, not by a check-then-insert read.
	ErrDuplicateAgreement = errors.New("pending agreement already exists for this user and apartment")

	// ErrMemberNotFound is returned when a member lookup misses.
	ErrMemberNotFound = errors.New("member not found")

	// ErrCouponNotFound is returned when a coupon lookup misses.
	ErrCouponNotFound = errors.New("coupon not found")
)
