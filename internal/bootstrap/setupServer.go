package bootstrap

import (
	"quiz-service/config"
	"quiz-service/domain"
	httpHandler "quiz-service/internal/api/http/handler"
	httpUsecase "quiz-service/internal/api/http/usecase"
	"quiz-service/internal/handler"
	"quiz-service/internal/server"

	"github.com/gofiber/fiber/v2"
)

func SetupServer(config config.Config, httpHandlers map[string]interface{}) *fiber.App {
	serverConfig := server.Config{
		Port:         config.Server.Port,
		AllowOrigins: config.Server.AllowOrigins,
		IdleTimeout:  config.Server.IdleTimeout,
		ReadTimeout:  config.Server.ReadTimeout,
		WriteTimeout: config.Server.WriteTimeout,
	}

	app := server.NewFiberApp(serverConfig)

	limiter := handler.NewRateLimiter(handler.RateLimitConfig{
		RequestsPerMinute: config.RateLimit.RequestsPerMinute,
		Burst:             config.RateLimit.Burst,
		PerUserPerMinute:  config.RateLimit.PerUserPerMinute,
		PerUserBurst:      config.RateLimit.PerUserBurst,
	})
	app.Use(limiter.Middleware())

	RegisterRoutes(app, httpHandlers)
	return app
}

// RegisterRoutes mounts every handler of httpHandlers on app.
func RegisterRoutes(app fiber.Router, httpHandlers map[string]interface{}) {
	createRoomHandler := httpHandlers["create-room"].(*httpHandler.CreateRoomHandler)
	joinRoomHandler := httpHandlers["join-room"].(*httpHandler.JoinRoomHandler)
	getRoomHandler := httpHandlers["get-room"].(*httpHandler.GetRoomHandler)
	leaveRoomHandler := httpHandlers["leave-room"].(*httpHandler.LeaveRoomHandler)

	createQuestionHandler := httpHandlers["create-question"].(*httpHandler.CreateQuestionHandler)
	listQuestionsHandler := httpHandlers["list-questions"].(*httpHandler.ListQuestionsHandler)
	getQuestionHandler := httpHandlers["get-question"].(*httpHandler.GetQuestionHandler)
	deleteQuestionHandler := httpHandlers["delete-question"].(*httpHandler.DeleteQuestionHandler)
	submitAnswerHandler := httpHandlers["submit-answer"].(*httpHandler.SubmitAnswerHandler)
	getStatisticsHandler := httpHandlers["get-statistics"].(*httpHandler.GetStatisticsHandler)

	createChoiceQuestionHandler := httpHandlers["create-choice-question"].(*httpHandler.CreateChoiceQuestionHandler)
	submitOptionsHandler := httpHandlers["submit-options"].(*httpHandler.SubmitOptionsHandler)
	submitSelectionHandler := httpHandlers["submit-selection"].(*httpHandler.SubmitSelectionHandler)
	currentQuestionHandler := httpHandlers["current-question"].(*httpHandler.GetCurrentQuestionHandler)
	questionHistoryHandler := httpHandlers["question-history"].(*httpHandler.GetQuestionHistoryHandler)
	nextQuestionHandler := httpHandlers["next-question"].(*httpHandler.NextQuestionHandler)

	startRoundHandler := httpHandlers["start-round"].(*httpHandler.StartRoundHandler)
	submitGuessHandler := httpHandlers["submit-guess"].(*httpHandler.SubmitGuessHandler)
	surrenderRoundHandler := httpHandlers["surrender-round"].(*httpHandler.SurrenderRoundHandler)
	currentRoundHandler := httpHandlers["current-round"].(*httpHandler.GetCurrentRoundHandler)
	roundHistoryHandler := httpHandlers["round-history"].(*httpHandler.GetRoundHistoryHandler)

	rooms := app.Group("/rooms")
	rooms.Post("/", handler.HandleWithFiber[httpHandler.CreateRoomRequest, httpHandler.CreateRoomResponse](createRoomHandler))
	rooms.Post("/join", handler.HandleWithFiber[httpHandler.JoinRoomRequest, httpHandler.JoinRoomResponse](joinRoomHandler))
	rooms.Get("/:code", handler.HandleWithFiber[httpHandler.GetRoomRequest, httpHandler.GetRoomResponse](getRoomHandler))
	rooms.Post("/:code/leave", handler.HandleWithFiber[httpHandler.LeaveRoomRequest, httpHandler.LeaveRoomResponse](leaveRoomHandler))

	questions := app.Group("/questions")
	questions.Post("/", handler.HandleWithFiber[httpHandler.CreateQuestionRequest, httpHandler.CreateQuestionResponse](createQuestionHandler))
	questions.Get("/", handler.HandleWithFiber[httpHandler.ListQuestionsRequest, httpHandler.ListQuestionsResponse](listQuestionsHandler))
	questions.Get("/:id", handler.HandleWithFiber[httpHandler.GetQuestionRequest, httpHandler.GetQuestionResponse](getQuestionHandler))
	questions.Delete("/:id", handler.HandleWithFiber[httpHandler.DeleteQuestionRequest, httpHandler.DeleteQuestionResponse](deleteQuestionHandler))

	answers := app.Group("/answers")
	answers.Post("/", handler.HandleWithFiber[httpHandler.SubmitAnswerRequest, httpUsecase.AnswerResult](submitAnswerHandler))
	answers.Get("/statistics", handler.HandleWithFiber[httpHandler.GetStatisticsRequest, domain.Statistics](getStatisticsHandler))

	game := app.Group("/game")
	game.Post("/question", handler.HandleWithFiber[httpHandler.CreateChoiceQuestionRequest, httpHandler.CreateChoiceQuestionResponse](createChoiceQuestionHandler))
	game.Post("/options", handler.HandleWithFiber[httpHandler.SubmitOptionsRequest, httpHandler.SubmitOptionsResponse](submitOptionsHandler))
	game.Post("/selection", handler.HandleWithFiber[httpHandler.SubmitSelectionRequest, httpUsecase.SelectionResult](submitSelectionHandler))
	game.Get("/:roomCode/current", handler.HandleWithFiber[httpHandler.GetCurrentQuestionRequest, httpHandler.GetCurrentQuestionResponse](currentQuestionHandler))
	game.Get("/:roomCode/history", handler.HandleWithFiber[httpHandler.GetQuestionHistoryRequest, httpHandler.GetQuestionHistoryResponse](questionHistoryHandler))
	game.Post("/:roomCode/next", handler.HandleWithFiber[httpHandler.NextQuestionRequest, httpHandler.NextQuestionResponse](nextQuestionHandler))

	music := app.Group("/music")
	music.Post("/random", handler.HandleWithFiber[httpHandler.StartRoundRequest, httpHandler.StartRoundResponse](startRoundHandler))
	music.Post("/guess", handler.HandleWithFiber[httpHandler.SubmitGuessRequest, httpUsecase.GuessResult](submitGuessHandler))
	music.Post("/surrender", handler.HandleWithFiber[httpHandler.SurrenderRoundRequest, httpUsecase.SurrenderResult](surrenderRoundHandler))
	music.Get("/:roomCode/current", handler.HandleWithFiber[httpHandler.GetCurrentRoundRequest, httpHandler.GetCurrentRoundResponse](currentRoundHandler))
	music.Get("/:roomCode/history", handler.HandleWithFiber[httpHandler.GetRoundHistoryRequest, httpHandler.GetRoundHistoryResponse](roundHistoryHandler))
}
