package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Server carries the process-wide configuration into the handlers.
type Server struct {
	cfg Config
}

type PlanRequest struct {
	Subject  string `json:"subject" form:"subject"`
	Topics   string `json:"topics" form:"topics"`
	FreeTime string `json:"free_time" form:"free_time"`
	PlanType string `json:"plan_type" form:"plan_type"`
}

// PlanResult is the view model: exactly one of Text, Entries, Grid is
// populated per request.
type PlanResult struct {
	ID       string           `json:"id"`
	PlanType string           `json:"plan_type"`
	Source   string           `json:"source"` // "model" or "generated"
	Text     string           `json:"text,omitempty"`
	Entries  []TimetableEntry `json:"entries,omitempty"`
	Grid     *WeeklyGrid      `json:"grid,omitempty"`
}

type PlanResponse struct {
	Success bool        `json:"success"`
	Plan    *PlanResult `json:"plan,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func planRequestFromForm(c *fiber.Ctx) PlanRequest {
	return PlanRequest{
		Subject:  strings.TrimSpace(c.FormValue("subject")),
		Topics:   strings.TrimSpace(c.FormValue("topics")),
		FreeTime: strings.TrimSpace(c.FormValue("free_time", "1 hour")),
		PlanType: strings.TrimSpace(c.FormValue("plan_type", "daily")),
	}
}

func (s *Server) handleIndex(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{})
}

func (s *Server) handleGenerate(c *fiber.Ctx) error {
	req := planRequestFromForm(c)
	if req.Subject == "" && req.Topics == "" {
		return c.Render("index", fiber.Map{
			"Error": "Please enter a subject or some topics",
			"Form":  req,
		})
	}
	return c.Render("index", fiber.Map{
		"Plan": s.buildPlan(req),
		"Form": req,
	})
}

func (s *Server) handleAPIPlan(c *fiber.Ctx) error {
	var req PlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(PlanResponse{
			Success: false,
			Error:   "Invalid request format: " + err.Error(),
		})
	}
	if strings.TrimSpace(req.Subject) == "" && strings.TrimSpace(req.Topics) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(PlanResponse{
			Success: false,
			Error:   "Subject or topics required",
		})
	}
	return c.JSON(PlanResponse{Success: true, Plan: s.buildPlan(req)})
}

// buildPlan queries the model when a token is configured and falls back to
// the deterministic generator when it is not, or when the call fails.
func (s *Server) buildPlan(req PlanRequest) *PlanResult {
	plan := &PlanResult{ID: uuid.New().String(), PlanType: req.PlanType}

	if s.cfg.Token != "" {
		reply, err := requestTimetable(s.cfg, buildPrompt(req.Subject, req.Topics, req.FreeTime, req.PlanType))
		if err == nil && reply != "" {
			plan.Source = "model"
			fillPlanFromReply(plan, reply, req.PlanType)
			return plan
		}
		if err != nil {
			fmt.Printf("⚠️ Model request failed, using local generator: %v\n", err)
		}
	}

	plan.Source = "generated"
	plan.Entries, plan.Grid = generatePlan(req.Subject, req.Topics, req.FreeTime, req.PlanType)
	return plan
}

// fillPlanFromReply shapes a model reply: weekly plans become a grid,
// everything else stays a flat table, and a reply nothing could parse is
// shown as raw text.
func fillPlanFromReply(plan *PlanResult, reply, planType string) {
	entries, grid := entriesFromReply(reply)
	switch {
	case planType == "weekly":
		if grid == nil && len(entries) > 0 {
			grid = buildWeeklyGrid(entries)
		}
		if grid == nil {
			plan.Text = reply
			return
		}
		plan.Grid = grid
	case grid != nil:
		plan.Grid = grid
	case len(entries) > 0:
		plan.Entries = entries
	default:
		plan.Text = reply
	}
}

// Download handlers regenerate the plan deterministically from the posted
// form fields. Nothing is persisted between requests, and no token is
// needed for either artifact.

func (s *Server) handleDownloadPDF(c *fiber.Ctx) error {
	req := planRequestFromForm(c)
	entries, grid := generatePlan(req.Subject, req.Topics, req.FreeTime, req.PlanType)

	data, err := timetablePDF(req, entries, grid)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(PlanResponse{
			Success: false,
			Error:   "Failed to generate PDF: " + err.Error(),
		})
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="study-plan-%s.pdf"`, uuid.New().String()[:8]))
	return c.Send(data)
}

func (s *Server) handleDownloadICS(c *fiber.Ctx) error {
	req := planRequestFromForm(c)
	entries, grid := generatePlan(req.Subject, req.Topics, req.FreeTime, req.PlanType)
	if grid == nil {
		grid = buildWeeklyGrid(entries)
	}

	var buf strings.Builder
	if err := writeCalendar(convertToTriplets(grid), time.Now(), &buf); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(PlanResponse{
			Success: false,
			Error:   "Failed to generate calendar: " + err.Error(),
		})
	}

	c.Set("Content-Type", "text/calendar")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="study-plan-%s.ics"`, uuid.New().String()[:8]))
	return c.SendString(buf.String())
}
