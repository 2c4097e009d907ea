package todo

import "time"

type Todo struct {
	Id          uint64
	Title       string
	Description string
	CreatedAt   time.Time
}

type NewTodo struct {
	Title       string
	Description string
}
