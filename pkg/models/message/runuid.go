package message

import "github.com/google/uuid"

type RunUid string

func NewRunUid() RunUid {
	return RunUid(uuid.New().String())
}
