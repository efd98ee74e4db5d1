package fleet

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrDuplicate          = errors.New("record already exists")
	ErrWorkOrderClosed    = errors.New("work order is completed or cancelled")
	ErrInvalidTransition  = errors.New("illegal work order status transition")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// wrapNotFound translates gorm's sentinel into the service-level one so
// callers never import gorm to classify a lookup miss.
func wrapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

