package domain

import "time"

type Topic struct {
	ID          TopicID
	TaskID      TaskID
	Criticality TopicCriticality
	Description string
}

type Message struct {
	ID           MessageID
	TopicID      TopicID
	Timestamp    time.Time
	AuthorUserID UserID
	Content      string
}
