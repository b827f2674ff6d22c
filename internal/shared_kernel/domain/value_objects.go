package domain

import "github.com/google/uuid"

type ID string
type Version int

func NewID() ID {
	return ID(uuid.NewString())
}

func (vo ID) String() string {
	return string(vo)
}

func (vo ID) IsValid() bool {
	_, err := uuid.Parse(string(vo))
	return err == nil
}
