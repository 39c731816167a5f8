package ws

import (
	"encoding/json"
	"time"
)

// Cashflow-отчёт считается на устройстве, у которого есть локальные данные.
// Сервер только ретранслирует запрос между устройствами пользователя
// и возвращает результат запросившей стороне.

type cashflowRequest struct {
	RequestID    string `json:"requestId"`
	TargetUserID int    `json:"userId"`
	BusinessName string `json:"businessName"`
	Period       string `json:"period"`
	Year         int    `json:"year"`
	Month        int    `json:"month,omitempty"`
	Quarter      int    `json:"quarter,omitempty"`
}

type cashflowResult struct {
	RequestID    string         `json:"requestId"`
	SenderID     int            `json:"senderId"`
	BusinessName string         `json:"businessName"`
	Period       string         `json:"period"`
	Year         int            `json:"year"`
	Month        int            `json:"month,omitempty"`
	Quarter      int            `json:"quarter,omitempty"`
	RawData      map[string]any `json:"rawData"`
	DataCount    map[string]any `json:"dataCount,omitempty"`
}

type cashflowFailure struct {
	RequestID string `json:"requestId"`
	SenderID  int    `json:"senderId"`
	Error     string `json:"error"`
}

type cashflowStatusQuery struct {
	RequestID string `json:"requestId"`
}

func validateCashflowRequest(p cashflowRequest) string {
	switch {
	case p.BusinessName == "" || p.Period == "" || p.Year == 0:
		return "Missing required fields"
	case p.Period == "monthly" && p.Month == 0:
		return "Month is required for monthly period"
	case p.Period == "quarterly" && p.Quarter == 0:
		return "Quarter is required for quarterly period"
	case p.Period != "monthly" && p.Period != "quarterly" && p.Period != "yearly":
		return "Invalid period type"
	}
	return ""
}

func (h *Handler) cashflowError(userID int, requestID, msg string) {
	h.hub.SendTo(userID, "cashflow_error", map[string]any{
		"message":   msg,
		"requestId": requestID,
		"timestamp": time.Now().UTC(),
	})
}

func (h *Handler) requestCashflow(c *Client, raw json.RawMessage) {
	var p cashflowRequest
	if err := json.Unmarshal(raw, &p); err != nil {
		h.cashflowError(c.userID, "", "Invalid cashflow request payload")
		return
	}

	if msg := validateCashflowRequest(p); msg != "" {
		h.cashflowError(c.userID, p.RequestID, msg)
		return
	}

	target := p.TargetUserID
	if target == 0 {
		target = c.userID
	}

	if !h.hub.Online(target) {
		h.cashflowError(c.userID, p.RequestID, "Target device is offline")
		return
	}

	h.hub.SendTo(c.userID, "cashflow_request_received", map[string]any{
		"message":      "Cashflow request received and is being processed",
		"requestId":    p.RequestID,
		"timestamp":    time.Now().UTC(),
		"businessName": p.BusinessName,
		"period":       p.Period,
		"year":         p.Year,
		"month":        p.Month,
		"quarter":      p.Quarter,
	})

	h.hub.SendTo(target, "generate_raw_cashflow_data", map[string]any{
		"requestId":    p.RequestID,
		"senderId":     c.userID,
		"businessName": p.BusinessName,
		"period":       p.Period,
		"year":         p.Year,
		"month":        p.Month,
		"quarter":      p.Quarter,
		"timestamp":    time.Now().UTC(),
	})
}

func (h *Handler) cashflowGenerated(c *Client, raw json.RawMessage) {
	var p cashflowResult
	if err := json.Unmarshal(raw, &p); err != nil {
		h.cashflowError(c.userID, "", "Invalid raw data response from generator")
		return
	}

	if p.RequestID == "" || p.RawData == nil {
		h.cashflowError(p.SenderID, p.RequestID, "Invalid raw data response from generator")
		return
	}

	h.hub.SendTo(p.SenderID, "cashflow_response", map[string]any{
		"message":      "Cashflow statement generated successfully",
		"requestId":    p.RequestID,
		"senderId":     p.SenderID,
		"businessName": p.BusinessName,
		"period":       p.Period,
		"year":         p.Year,
		"month":        p.Month,
		"quarter":      p.Quarter,
		"rawData":      p.RawData,
		"dataCount":    p.DataCount,
		"generatedAt":  time.Now().UTC(),
	})
}

func (h *Handler) cashflowFailed(c *Client, raw json.RawMessage) {
	var p cashflowFailure
	if err := json.Unmarshal(raw, &p); err != nil {
		return
	}

	target := p.SenderID
	if target == 0 {
		target = c.userID
	}

	msg := p.Error
	if msg == "" {
		msg = "Failed to generate cashflow raw data on client"
	}
	h.cashflowError(target, p.RequestID, msg)
}

func (h *Handler) cashflowStatus(c *Client, raw json.RawMessage) {
	var p cashflowStatusQuery
	if err := json.Unmarshal(raw, &p); err != nil {
		return
	}

	h.hub.SendTo(c.userID, "cashflow_status_response", map[string]any{
		"requestId": p.RequestID,
		"status":    "processing",
		"message":   "Cashflow request is being processed",
		"timestamp": time.Now().UTC(),
	})
}
