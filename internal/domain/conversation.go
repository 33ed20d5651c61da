package domain

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

type ConversationTurn struct {
	Sender Sender `json:"sender"`
	Text   string `json:"text"`
}
