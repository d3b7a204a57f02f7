package bootstrap

import (
	"quiz-service/config"
	"quiz-service/infra/messaging"
	httpHandler "quiz-service/internal/api/http/handler"
	httpUsecase "quiz-service/internal/api/http/usecase"
	kafkaHandler "quiz-service/internal/api/kafka"
)

func SetupHTTPHandlers(config config.Config, postgresRepository PostgresRepository, trackSource TrackSource, notifier httpUsecase.RoomNotifier) map[string]interface{} {
	createRoomUseCase := httpUsecase.NewCreateRoomUseCase(postgresRepository, notifier, config.Game.RoomCodeLength)
	joinRoomUseCase := httpUsecase.NewJoinRoomUseCase(postgresRepository, notifier)
	getRoomUseCase := httpUsecase.NewGetRoomUseCase(postgresRepository)
	leaveRoomUseCase := httpUsecase.NewLeaveRoomUseCase(postgresRepository, notifier)

	createQuestionUseCase := httpUsecase.NewCreateQuestionUseCase(postgresRepository)
	listQuestionsUseCase := httpUsecase.NewListQuestionsUseCase(postgresRepository)
	getQuestionUseCase := httpUsecase.NewGetQuestionUseCase(postgresRepository)
	deleteQuestionUseCase := httpUsecase.NewDeleteQuestionUseCase(postgresRepository)
	submitAnswerUseCase := httpUsecase.NewSubmitAnswerUseCase(postgresRepository)
	getStatisticsUseCase := httpUsecase.NewGetStatisticsUseCase(postgresRepository)

	createChoiceQuestionUseCase := httpUsecase.NewCreateChoiceQuestionUseCase(postgresRepository, notifier)
	submitOptionsUseCase := httpUsecase.NewSubmitOptionsUseCase(postgresRepository, notifier)
	submitSelectionUseCase := httpUsecase.NewSubmitSelectionUseCase(postgresRepository, notifier)
	getCurrentQuestionUseCase := httpUsecase.NewGetCurrentQuestionUseCase(postgresRepository)
	getQuestionHistoryUseCase := httpUsecase.NewGetQuestionHistoryUseCase(postgresRepository)
	nextQuestionUseCase := httpUsecase.NewNextQuestionUseCase(postgresRepository, notifier)

	startRoundUseCase := httpUsecase.NewStartRoundUseCase(postgresRepository, trackSource, notifier)
	submitGuessUseCase := httpUsecase.NewSubmitGuessUseCase(postgresRepository, notifier, config.Game.GuessCooldown)
	surrenderRoundUseCase := httpUsecase.NewSurrenderRoundUseCase(postgresRepository, notifier)
	getCurrentRoundUseCase := httpUsecase.NewGetCurrentRoundUseCase(postgresRepository)
	getRoundHistoryUseCase := httpUsecase.NewGetRoundHistoryUseCase(postgresRepository)

	return map[string]interface{}{
		"create-room": httpHandler.NewCreateRoomHandler(createRoomUseCase),
		"join-room":   httpHandler.NewJoinRoomHandler(joinRoomUseCase),
		"get-room":    httpHandler.NewGetRoomHandler(getRoomUseCase),
		"leave-room":  httpHandler.NewLeaveRoomHandler(leaveRoomUseCase),

		"create-question": httpHandler.NewCreateQuestionHandler(createQuestionUseCase),
		"list-questions":  httpHandler.NewListQuestionsHandler(listQuestionsUseCase),
		"get-question":    httpHandler.NewGetQuestionHandler(getQuestionUseCase),
		"delete-question": httpHandler.NewDeleteQuestionHandler(deleteQuestionUseCase),
		"submit-answer":   httpHandler.NewSubmitAnswerHandler(submitAnswerUseCase),
		"get-statistics":  httpHandler.NewGetStatisticsHandler(getStatisticsUseCase),

		"create-choice-question": httpHandler.NewCreateChoiceQuestionHandler(createChoiceQuestionUseCase),
		"submit-options":         httpHandler.NewSubmitOptionsHandler(submitOptionsUseCase),
		"submit-selection":       httpHandler.NewSubmitSelectionHandler(submitSelectionUseCase),
		"current-question":       httpHandler.NewGetCurrentQuestionHandler(getCurrentQuestionUseCase),
		"question-history":       httpHandler.NewGetQuestionHistoryHandler(getQuestionHistoryUseCase),
		"next-question":          httpHandler.NewNextQuestionHandler(nextQuestionUseCase),

		"start-round":     httpHandler.NewStartRoundHandler(startRoundUseCase),
		"submit-guess":    httpHandler.NewSubmitGuessHandler(submitGuessUseCase),
		"surrender-round": httpHandler.NewSurrenderRoundHandler(surrenderRoundUseCase),
		"current-round":   httpHandler.NewGetCurrentRoundHandler(getCurrentRoundUseCase),
		"round-history":   httpHandler.NewGetRoundHistoryHandler(getRoundHistoryUseCase),
	}
}

func SetupMessageHandlers(postgresRepository PostgresRepository) map[string]MessageHandler {
	createdUserUseCase := httpUsecase.NewCreateUserUseCase(postgresRepository)
	createdUserHandler := kafkaHandler.NewCreatedUserHandler(createdUserUseCase)

	return map[string]MessageHandler{
		messaging.MessageUserCreated: createdUserHandler,
	}
}
