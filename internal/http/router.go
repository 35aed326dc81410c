package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter configura el router de Gin con middlewares y rutas. Todas las
// rutas menos /health exigen el token del proveedor de identidad.
func NewRouter(
	logger *zap.Logger,
	authSecret string,
	profileH *ProfileHandler,
	interestH *InterestHandler,
	matchH *MatchHandler,
	conversationH *ConversationHandler,
	lobbyH *LobbyHandler,
	analysisH *AnalysisHandler,
	expenseH *ExpenseHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authed := r.Group("", AuthMiddleware(authSecret))

	profiles := authed.Group("/profiles")
	profiles.POST("", profileH.CreateProfile)
	profiles.GET("/me", profileH.GetMyProfile)
	profiles.PUT("/me", profileH.UpdateMyProfile)
	profiles.GET("/me/interests", interestH.GetMySelections)
	profiles.PUT("/me/interests", interestH.PutMySelections)
	profiles.GET("/:id", profileH.GetProfile)

	authed.GET("/interests", interestH.ListInterests)
	authed.POST("/matches", matchH.ComputeMatch)

	conversations := authed.Group("/conversations")
	conversations.POST("", conversationH.StartConversation)
	conversations.GET("/:id", conversationH.GetConversation)
	conversations.PUT("/:id/favorite", conversationH.SetFavorite)
	conversations.PUT("/:id/follow-up", conversationH.SetFollowUp)
	conversations.POST("/:id/end", conversationH.EndConversation)
	conversations.POST("/:id/topics", conversationH.GenerateTopic)
	conversations.POST("/:id/topics/options", conversationH.GenerateTopicsWithOptions)
	conversations.GET("/:id/topics", conversationH.ListTopics)
	conversations.PUT("/:id/note", conversationH.PutNote)
	conversations.GET("/:id/note", conversationH.GetNote)

	lobby := authed.Group("/lobby")
	lobby.GET("", lobbyH.ListLobby)
	lobby.PUT("/availability", lobbyH.SetAvailability)
	lobby.POST("/heartbeat", lobbyH.Heartbeat)

	analysis := authed.Group("/analysis")
	analysis.POST("/chat", analysisH.ChatAnalysis)
	analysis.POST("/profile", analysisH.ProfileAnalysis)

	expenses := authed.Group("/expenses")
	expenses.POST("", expenseH.AddExpense)
	expenses.GET("/today", expenseH.ListTodayExpenses)
	expenses.DELETE("/:id", expenseH.DeleteExpense)

	authed.GET("/report", expenseH.GetDailyReport)
	authed.POST("/report/email", expenseH.EmailDailyReport)

	return r
}
