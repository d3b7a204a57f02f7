package domain

const (
	EventRoomCreated        = "room_created"
	EventPlayerJoined       = "player_joined"
	EventPlayerLeft         = "player_left"
	EventRoomClosed         = "room_closed"
	EventQuestionCreated    = "question_created"
	EventQuestionCompleted  = "question_completed"
	EventOptionsSubmitted   = "options_submitted"
	EventSelectionSubmitted = "selection_submitted"
	EventNextQuestion       = "next_question"
	EventRoundStarted       = "round_started"
	EventGuessSubmitted     = "guess_submitted"
	EventRoundCompleted     = "round_completed"
	EventRoundSurrendered   = "round_surrendered"
)
