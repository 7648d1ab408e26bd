package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pokerhost/internal/model"
	"pokerhost/internal/service"
	dealerSvc "pokerhost/internal/service/dealer"
	gameSvc "pokerhost/internal/service/game"
	ledgerSvc "pokerhost/internal/service/ledger"
	playerSvc "pokerhost/internal/service/player"
	"pokerhost/internal/ws"
	appErr "pokerhost/pkg/errors"
	"pokerhost/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	services *service.Container
	feed     *ws.Handler
}

func RegisterRoutes(r *gin.Engine, services *service.Container) {
	handler := &Handler{
		services: services,
		feed:     ws.NewHandler(services.Game, services.Settlement),
	}

	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{"message": "pong"})
	})

	v1 := r.Group("/pokerhost/v1")
	{
		gameGroup := v1.Group("/games")
		{
			gameGroup.POST("", handler.CreateGame)
			gameGroup.GET("", handler.ListGames)
			gameGroup.GET("/:id", handler.GetGame)
			gameGroup.POST("/:id/end", handler.EndGame)
			gameGroup.PUT("/:id/hosts", handler.UpdateHosts)
			gameGroup.PUT("/:id/insurance_partners", handler.SetDefaultPartners)

			gameGroup.POST("/:id/players", handler.AddPlayer)
			gameGroup.POST("/:id/dealers", handler.AddDealer)
			gameGroup.POST("/:id/expenses", handler.AddExpense)
			gameGroup.POST("/:id/rakes", handler.AddRake)
			gameGroup.POST("/:id/insurances", handler.AddInsurance)

			gameGroup.GET("/:id/summary", handler.GetSummary)
			gameGroup.GET("/:id/settlement", handler.GetSettlement)
			gameGroup.GET("/:id/report", handler.GetReport)
		}

		playerGroup := v1.Group("/players")
		{
			playerGroup.POST("/:id/buyins", handler.AddBuyIn)
			playerGroup.POST("/:id/cashout", handler.CashOut)
			playerGroup.PUT("/:id/entry_fee", handler.SetCustomEntryFee)
			playerGroup.PUT("/:id/entry_fee_collected", handler.SetEntryFeeCollected)
		}

		buyInGroup := v1.Group("/buyins")
		{
			buyInGroup.PUT("/:id", handler.UpdateBuyIn)
			buyInGroup.DELETE("/:id", handler.DeleteBuyIn)
		}

		dealerGroup := v1.Group("/dealers")
		{
			dealerGroup.PUT("/:id", handler.UpdateDealer)
			dealerGroup.POST("/:id/clock_out", handler.ClockOutDealer)
		}

		v1.DELETE("/expenses/:id", handler.DeleteExpense)
		v1.DELETE("/insurances/:id", handler.DeleteInsurance)
	}

	r.GET("/ws/games/:id", handler.feed.HandleGameWS)
}

type hostShareBody struct {
	Name       string  `json:"name" binding:"required"`
	ShareRatio float64 `json:"shareRatio" binding:"gte=0"`
}

type insurancePartnerBody struct {
	Name       string  `json:"name" binding:"required"`
	Percentage float64 `json:"percentage" binding:"gte=0"`
}

type gameMutationBody struct {
	Name            string                 `json:"name" binding:"required"`
	Mode            string                 `json:"mode" binding:"required,oneof=rake no_rake"`
	EntryFeeMode    string                 `json:"entryFeeMode" binding:"omitempty,oneof=fixed hourly"`
	FixedEntryFee   float64                `json:"fixedEntryFee" binding:"gte=0"`
	HourlyRate      float64                `json:"hourlyRate" binding:"gte=0"`
	SmallBlind      float64                `json:"smallBlind" binding:"gte=0"`
	BigBlind        float64                `json:"bigBlind" binding:"gte=0"`
	Hosts           []hostShareBody        `json:"hosts"`
	DefaultPartners []insurancePartnerBody `json:"defaultPartners"`
	StartedAt       *string                `json:"startedAt"`
}

func (b gameMutationBody) toParams() (gameSvc.MutationParams, error) {
	feeMode := strings.ToLower(strings.TrimSpace(b.EntryFeeMode))
	if feeMode == "" {
		feeMode = "fixed"
	}

	var startedAt *time.Time
	if b.StartedAt != nil && strings.TrimSpace(*b.StartedAt) != "" {
		ts, err := parseTimeWithLayouts(strings.TrimSpace(*b.StartedAt))
		if err != nil {
			return gameSvc.MutationParams{}, err
		}
		startedAt = ts
	}

	return gameSvc.MutationParams{
		Name:            strings.TrimSpace(b.Name),
		Mode:            strings.ToLower(strings.TrimSpace(b.Mode)),
		EntryFeeMode:    feeMode,
		FixedEntryFee:   b.FixedEntryFee,
		HourlyRate:      b.HourlyRate,
		SmallBlind:      b.SmallBlind,
		BigBlind:        b.BigBlind,
		Hosts:           toHostShares(b.Hosts),
		DefaultPartners: toPartners(b.DefaultPartners),
		StartedAt:       startedAt,
	}, nil
}

type updateHostsBody struct {
	Hosts []hostShareBody `json:"hosts" binding:"required,min=1"`
}

type defaultPartnersBody struct {
	Partners []insurancePartnerBody `json:"partners" binding:"required,min=1"`
}

type addPlayerBody struct {
	Name       string  `json:"name" binding:"required"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	RecordedAt *string `json:"recordedAt"`
}

type buyInBody struct {
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	RecordedAt *string `json:"recordedAt"`
}

type cashOutBody struct {
	Amount float64 `json:"amount" binding:"gte=0"`
	Host   string  `json:"host"`
}

type customEntryFeeBody struct {
	Fee *float64 `json:"fee"`
}

type entryFeeCollectedBody struct {
	Collected bool `json:"collected"`
}

type dealerMutationBody struct {
	Name           string   `json:"name" binding:"required"`
	TipSharePct    int      `json:"tipSharePct" binding:"required,oneof=50 100"`
	HourlyRate     float64  `json:"hourlyRate" binding:"gte=0"`
	TotalTips      float64  `json:"totalTips" binding:"gte=0"`
	Host           string   `json:"host"`
	SalaryOverride *float64 `json:"salaryOverride"`
	WorkHours      *float64 `json:"workHours"`
}

func (b dealerMutationBody) toParams() dealerSvc.MutationParams {
	return dealerSvc.MutationParams{
		Name:           strings.TrimSpace(b.Name),
		TipSharePct:    b.TipSharePct,
		HourlyRate:     b.HourlyRate,
		TotalTips:      b.TotalTips,
		Host:           strings.TrimSpace(b.Host),
		SalaryOverride: b.SalaryOverride,
		WorkHours:      b.WorkHours,
	}
}

type clockOutBody struct {
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

type expenseBody struct {
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Host        string  `json:"host"`
}

type rakeBody struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type insuranceBody struct {
	Amount   float64                `json:"amount" binding:"required"`
	Partners []insurancePartnerBody `json:"partners"`
}

func (h *Handler) CreateGame(c *gin.Context) {
	var body gameMutationBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	params, err := body.toParams()
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	game, err := h.services.Game.Create(c.Request.Context(), params)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, appErr.ErrInvalidGameParams),
			errors.Is(err, appErr.ErrInvalidHosts):
			status = http.StatusBadRequest
		}
		response.Error(c, status, err.Error())
		return
	}

	response.Success(c, game)
}

func (h *Handler) ListGames(c *gin.Context) {
	page, err := parsePositiveIntQuery(c, "page", 1)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	size, err := parsePositiveIntQuery(c, "size", 20)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.services.Game.List(c.Request.Context(), page, size)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(c, gin.H{
		"items": result.Items,
		"total": result.Total,
		"page":  page,
		"size":  size,
	})
}

func (h *Handler) GetGame(c *gin.Context) {
	gameID, ok := pathID(c)
	if !ok {
		return
	}

	game, err := h.services.Game.Get(c.Request.Context(), gameID)
	if err != nil {
		h.gameError(c, err)
		return
	}

	response.Success(c, game)
}

func (h *Handler) EndGame(c *gin.Context) {
	gameID, ok := pathID(c)
	if !ok {
		return
	}

	game, err := h.services.Game.End(c.Request.Context(), gameID)
	if err != nil {
		h.gameError(c, err)
		return
	}

	h.feed.Notify(c.Request.Context(), gameID)
	response.Success(c, game)
}

func (h *Handler) UpdateHosts(c *gin.Context) {
	gameID, ok := pathID(c)
	if !ok {
		return
	}

	var body updateHostsBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	game, err := h.services.Game.UpdateHosts(c.Request.Context(), gameID, toHostShares(body.Hosts))
	if err != nil {
		h.gameError(c, err)
		return
	}

	h.feed.Notify(c.Request.Context(), gameID)
	response.Success(c, game)
}

func (h *Handler) SetDefaultPartners(c *gin.Context) {
	gameID, ok := pathID(c)
	if !ok {
		return
	}

	var body defaultPartnersBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	game, err := h.services.Game.SetDefaultPartners(c.Request.Context(), gameID, toPartners(body.Partners))
	if err != nil {
		h.gameError(c, err)
		return
	}

	response.Success(c, game)
}

func (h *Handler) AddPlayer(c *gin.Context) {
	gameID, ok := pathID(c)
	if !ok {
		return
	}

	var body addPlayerBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	recordedAt, err := optionalTime(body.RecordedAt)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	player, err := h.services.Player.Add(c.Request.Context(), gameID, body.Name, playerSvc.BuyInParams{
		Amount:     body.Amount,
		RecordedAt: recordedAt,
	})
	if err != nil {
		h.gameError(c, err)
		return
	}

	h.feed.Notify(c.Request.Context(), gameID)
	response.Success(c, player)
}

func (h *Handler) AddBuyIn(c *gin.Context) {
	playerID, ok := pathID(c)
	if !ok {
		return
	}

	var body buyInBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	recordedAt, err := optionalTime(body.RecordedAt)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := h.services.Player.AddBuyIn(c.Request.Context(), playerID, playerSvc.BuyInParams{
		Amount:     body.Amount,
		RecordedAt: recordedAt,
	})
	if err != nil {
		h.playerError(c, err)
		return
	}

	h.feed.Notify(c.Request.Context(), entry.GameID)
	response.Success(c, entry)
}

func (h *Handler) UpdateBuyIn(c *gin.Context) {
	buyInID, ok := pathID(c)
	if !ok {
		return
	}

	var body buyInBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := h.services.Player.UpdateBuyIn(c.Request.Context(), buyInID, body.Amount)
	if err != nil {
		h.playerError(c, err)
		return
	}

	h.feed.Notify(c.Request.Context(), entry.GameID)
	response.Success(c, entry)
}

func (h *Handler) DeleteBuyIn(c *gin.Context) {
	buyInID, ok := pathID(c)
	if !ok {
		return
	}

	gameID, err := h.services.Player.DeleteBuyIn(c.Request.Context(), buyInID)
	if err != nil {
		h.playerError(c, err)
		return
	}

	h.feed.Notify(c.Request.Context(), gameID)
	response.SuccessWithMsg(c, gin.H{}, "已刪除")
}

func (h *Handler) CashOut(c *gin.Context) {
	playerID, ok := pathID(c)
	if !ok {
		return
	}

	var body cashOutBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	player, err := h.services.Player.CashOut(c.Request.Context(), playerID, playerSvc.CashOutParams{
		Amount: body.Amount,
		Host:   strings.TrimSpace(body.Host),
	})
	if err != nil {
		h.playerError(c, err)
		return
	}

	h.feed.Notify(c.Request.Context(), player.GameID)
	response.Success(c, player)
}

func (h *Handler) SetCustomEntryFee(c *gin.Context) {
	playerID, ok := pathID(c)
	if !ok {
		return
	}

	var body customEntryFeeBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	player, err := h.services.Player.SetCustomEntryFee(c.Request.Context(), playerID, body.Fee)
	if err != nil {
		h.playerError(c, err)
		return
	}

	h.feed.Notify(c.Request.Context(), player.GameID)
	response.Success(c, player)
}

func (h *Handler) SetEntryFeeCollected(c *gin.Context) {
	playerID, ok := pathID(c)
	if !ok {
		return
	}

	var body entryFeeCollectedBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	player, err := h.services.Player.SetEntryFeeCollected(c.Request.Context(), playerID, body.Collected)
	if err != nil {
		h.playerError(c, err)
		return
	}

	h.feed.Notify(c.Request.Context(), player.GameID)
	response.Success(c, player)
}

func (h *Handler) AddDealer(c *gin.Context) {
	gameID, ok := pathID(c)
	if !ok {
		return
	}

	var body dealerMutationBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	dealer, err := h.services.Dealer.Add(c.Request.Context(), gameID, body.toParams())
	if err != nil {
		h.gameError(c, err)
		return
	}

	h.feed.Notify(c.Request.Context(), gameID)
	response.Success(c, dealer)
}

func (h *Handler) UpdateDealer(c *gin.Context) {
	dealerID, ok := pathID(c)
	if !ok {
		return
	}

	var body dealerMutationBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	dealer, err := h.services.Dealer.Update(c.Request.Context(), dealerID, body.toParams())
	if err != nil {
		h.dealerError(c, err)
		return
	}

	h.feed.Notify(c.Request.Context(), dealer.GameID)
	response.Success(c, dealer)
}

func (h *Handler) ClockOutDealer(c *gin.Context) {
	dealerID, ok := pathID(c)
	if !ok {
		return
	}

	var body clockOutBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	dealer, err := h.services.Dealer.ClockOut(c.Request.Context(), dealerID, body.StartTime, body.EndTime)
	if err != nil {
		h.dealerError(c, err)
		return
	}

	h.feed.Notify(c.Request.Context(), dealer.GameID)
	response.Success(c, dealer)
}

func (h *Handler) AddExpense(c *gin.Context) {
	gameID, ok := pathID(c)
	if !ok {
		return
	}

	var body expenseBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	expense, err := h.services.Ledger.AddExpense(c.Request.Context(), gameID, ledgerSvc.ExpenseParams{
		Category:    strings.TrimSpace(body.Category),
		Description: strings.TrimSpace(body.Description),
		Amount:      body.Amount,
		Host:        strings.TrimSpace(body.Host),
	})
	if err != nil {
		h.gameError(c, err)
		return
	}

	h.feed.Notify(c.Request.Context(), gameID)
	response.Success(c, expense)
}

func (h *Handler) DeleteExpense(c *gin.Context) {
	expenseID, ok := pathID(c)
	if !ok {
		return
	}

	gameID, err := h.services.Ledger.DeleteExpense(c.Request.Context(), expenseID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, appErr.ErrExpenseNotFound) {
			status = http.StatusNotFound
		}
		response.Error(c, status, err.Error())
		return
	}

	h.feed.Notify(c.Request.Context(), gameID)
	response.SuccessWithMsg(c, gin.H{}, "已刪除")
}

func (h *Handler) AddRake(c *gin.Context) {
	gameID, ok := pathID(c)
	if !ok {
		return
	}

	var body rakeBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := h.services.Ledger.AddRake(c.Request.Context(), gameID, body.Amount)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, appErr.ErrGameNotFound):
			status = http.StatusNotFound
		case errors.Is(err, appErr.ErrGameCompleted),
			errors.Is(err, appErr.ErrRakeModeRequired),
			errors.Is(err, appErr.ErrInvalidAmount):
			status = http.StatusBadRequest
		}
		response.Error(c, status, err.Error())
		return
	}

	h.feed.Notify(c.Request.Context(), gameID)
	response.Success(c, entry)
}

func (h *Handler) AddInsurance(c *gin.Context) {
	gameID, ok := pathID(c)
	if !ok {
		return
	}

	var body insuranceBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	insurance, err := h.services.Ledger.AddInsurance(c.Request.Context(), gameID, body.Amount, toPartners(body.Partners))
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, appErr.ErrGameNotFound):
			status = http.StatusNotFound
		case errors.Is(err, appErr.ErrGameCompleted),
			errors.Is(err, appErr.ErrInvalidPartners):
			status = http.StatusBadRequest
		}
		response.Error(c, status, err.Error())
		return
	}

	h.feed.Notify(c.Request.Context(), gameID)
	response.Success(c, insurance)
}

func (h *Handler) DeleteInsurance(c *gin.Context) {
	insuranceID, ok := pathID(c)
	if !ok {
		return
	}

	gameID, err := h.services.Ledger.DeleteInsurance(c.Request.Context(), insuranceID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, appErr.ErrInsuranceNotFound) {
			status = http.StatusNotFound
		}
		response.Error(c, status, err.Error())
		return
	}

	h.feed.Notify(c.Request.Context(), gameID)
	response.SuccessWithMsg(c, gin.H{}, "已刪除")
}

func (h *Handler) GetSummary(c *gin.Context) {
	gameID, ok := pathID(c)
	if !ok {
		return
	}

	summary, err := h.services.Settlement.Summary(c.Request.Context(), gameID)
	if err != nil {
		h.gameError(c, err)
		return
	}

	response.Success(c, summary)
}

func (h *Handler) GetSettlement(c *gin.Context) {
	gameID, ok := pathID(c)
	if !ok {
		return
	}

	result, err := h.services.Settlement.Settle(c.Request.Context(), gameID)
	if err != nil {
		h.gameError(c, err)
		return
	}

	response.Success(c, result)
}

func (h *Handler) GetReport(c *gin.Context) {
	gameID, ok := pathID(c)
	if !ok {
		return
	}

	report, err := h.services.Settlement.Report(c.Request.Context(), gameID)
	if err != nil {
		h.gameError(c, err)
		return
	}

	response.Success(c, gin.H{"report": report})
}

func (h *Handler) gameError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, appErr.ErrGameNotFound):
		status = http.StatusNotFound
	case errors.Is(err, appErr.ErrGameCompleted),
		errors.Is(err, appErr.ErrInvalidGameParams),
		errors.Is(err, appErr.ErrInvalidHosts),
		errors.Is(err, appErr.ErrInvalidPartners),
		errors.Is(err, appErr.ErrInvalidAmount):
		status = http.StatusBadRequest
	}
	response.Error(c, status, err.Error())
}

func (h *Handler) playerError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, appErr.ErrPlayerNotFound),
		errors.Is(err, appErr.ErrBuyInNotFound),
		errors.Is(err, appErr.ErrGameNotFound):
		status = http.StatusNotFound
	case errors.Is(err, appErr.ErrPlayerCashedOut),
		errors.Is(err, appErr.ErrGameCompleted),
		errors.Is(err, appErr.ErrInvalidAmount),
		errors.Is(err, appErr.ErrInvalidGameParams):
		status = http.StatusBadRequest
	}
	response.Error(c, status, err.Error())
}

func (h *Handler) dealerError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, appErr.ErrDealerNotFound),
		errors.Is(err, appErr.ErrGameNotFound):
		status = http.StatusNotFound
	case errors.Is(err, appErr.ErrGameCompleted),
		errors.Is(err, appErr.ErrInvalidClockTime),
		errors.Is(err, appErr.ErrInvalidGameParams):
		status = http.StatusBadRequest
	}
	response.Error(c, status, err.Error())
}

func toHostShares(in []hostShareBody) []model.HostShare {
	out := make([]model.HostShare, 0, len(in))
	for _, h := range in {
		out = append(out, model.HostShare{
			Name:       strings.TrimSpace(h.Name),
			ShareRatio: h.ShareRatio,
		})
	}
	return out
}

func toPartners(in []insurancePartnerBody) []model.InsurancePartner {
	out := make([]model.InsurancePartner, 0, len(in))
	for _, p := range in {
		out = append(out, model.InsurancePartner{
			Name:       strings.TrimSpace(p.Name),
			Percentage: p.Percentage,
		})
	}
	return out
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func parsePositiveIntQuery(c *gin.Context, key string, defaultVal int) (int, error) {
	val := c.Query(key)
	if val == "" {
		return defaultVal, nil
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return parsed, nil
}

func optionalTime(value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	return parseTimeWithLayouts(strings.TrimSpace(*value))
}

func parseTimeWithLayouts(value string) (*time.Time, error) {
	layouts := []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
	}
	for _, layout := range layouts {
		if ts, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return &ts, nil
		}
	}
	return nil, fmt.Errorf("invalid time, expected RFC3339 or '2006-01-02 15:04:05'")
}
