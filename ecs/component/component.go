package component

import "errors"

var (
	ErrEntityNotAlive        = errors.New("ecs: entity not alive")
	ErrNilComponent          = errors.New("ecs: component is nil")
	ErrDuplicateInteractable = errors.New("ecs: duplicate interactable id")
)
