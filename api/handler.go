package api

import (
	"errors"
	"log/slog"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/workload"

	"github.com/gofiber/fiber/v2"
)

type SchedulerHandler interface {
	FirstInFirstOut(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTime(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	GenerateWorkload(ctx *fiber.Ctx) error
	Simulate(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

func (s *SchedulerHandlerImpl) FirstInFirstOut(ctx *fiber.Ctx) error {
	return s.scheduleOne(ctx, schedulers.FirstInFirstOut)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.scheduleOne(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTime(ctx *fiber.Ctx) error {
	return s.scheduleOne(ctx, schedulers.ShortestRemainingTime)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	w, err := parseWorkload(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	results, err := schedulers.RunAll(w)
	if err != nil {
		return badRequest(ctx, err)
	}
	response, err := schedulers.GenerateComparison(results)
	if err != nil {
		return internalError(ctx, err)
	}
	return ctx.JSON(response)
}

// GenerateWorkload returns a synthetic workload. Parameters missing from the
// body fall back to the configured ones.
func (s *SchedulerHandlerImpl) GenerateWorkload(ctx *fiber.Ctx) error {
	params := s.generateRequest()
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&params); err != nil {
			return badRequest(ctx, errors.New("invalid request format"))
		}
	}
	w, err := generate(params)
	if err != nil {
		return badRequest(ctx, err)
	}
	return ctx.JSON(requests.FromWorkload(w))
}

// Simulate generates a workload from the configuration, optionally overridden
// by query parameters n, k, d, v and seed, and runs every algorithm on it.
func (s *SchedulerHandlerImpl) Simulate(ctx *fiber.Ctx) error {
	params := s.generateRequest()
	if err := ctx.QueryParser(&params); err != nil {
		return badRequest(ctx, errors.New("invalid query parameters"))
	}
	w, err := generate(params)
	if err != nil {
		return badRequest(ctx, err)
	}
	results, err := schedulers.RunAll(w)
	if err != nil {
		return internalError(ctx, err)
	}
	comparison, err := schedulers.GenerateComparison(results)
	if err != nil {
		return internalError(ctx, err)
	}
	return ctx.JSON(responses.SimulationResponse{
		Jobs:               requests.FromWorkload(w).Jobs,
		ComparisonResponse: comparison,
	})
}

func (s *SchedulerHandlerImpl) scheduleOne(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	w, err := parseWorkload(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	result, err := schedulers.Run(algorithm, w)
	if err != nil {
		return badRequest(ctx, err)
	}
	response, err := schedulers.GenerateResponse(result)
	if err != nil {
		return internalError(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) generateRequest() requests.GenerateRequest {
	p := s.config.Workload
	return requests.GenerateRequest{
		Count:       p.Count,
		MaxArrival:  p.MaxArrival,
		MeanBurst:   p.MeanBurst,
		BurstStdDev: p.BurstStdDev,
		Seed:        p.Seed,
	}
}

func parseWorkload(ctx *fiber.Ctx) (core.Workload, error) {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return nil, errors.New("invalid request format")
	}
	return request.ToWorkload()
}

func generate(r requests.GenerateRequest) (core.Workload, error) {
	g, err := workload.New(workload.Params{
		Count:       r.Count,
		MaxArrival:  r.MaxArrival,
		MeanBurst:   r.MeanBurst,
		BurstStdDev: r.BurstStdDev,
		Seed:        r.Seed,
	})
	if err != nil {
		return nil, err
	}
	return g.Generate(), nil
}

func badRequest(ctx *fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}

func internalError(ctx *fiber.Ctx, err error) error {
	slog.Error("can not process request", slog.String("path", ctx.Path()), slog.Any("error", err))
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
}
