package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTime(ctx *fiber.Ctx) error
	HighestResponseRatioNext(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Policies(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	log    logrus.FieldLogger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, log logrus.FieldLogger) *SchedulerHandlerImpl {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &SchedulerHandlerImpl{config: config, log: log}
}

func (s *SchedulerHandlerImpl) options() schedulers.Options {
	opts := schedulers.Options{Logger: s.log}
	if s.config != nil {
		opts.TimeQuantum = s.config.RoundRobinTimeQuantum
	}
	return opts
}

func (s *SchedulerHandlerImpl) parse(ctx *fiber.Ctx) (*requests.ScheduleRequests, error) {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return nil, err
	}
	return &request, nil
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, policy string) error {
	request, err := s.parse(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}
	response, err := schedulers.Schedule(policy, request, s.options())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) fail(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, core.ErrInvalidInput):
		status = fiber.StatusBadRequest
	case errors.Is(err, schedulers.ErrUnknownPolicy):
		status = fiber.StatusNotFound
	default:
		s.log.WithError(err).Error("can not process request")
	}
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, "fcfs")
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, "rr")
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, "sjf")
}

func (s *SchedulerHandlerImpl) ShortestRemainingTime(ctx *fiber.Ctx) error {
	return s.schedule(ctx, "srt")
}

func (s *SchedulerHandlerImpl) HighestResponseRatioNext(ctx *fiber.Ctx) error {
	return s.schedule(ctx, "hrrn")
}

// Schedule serves POST /api/v1/schedule/:policy for any registered policy.
func (s *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	return s.schedule(ctx, ctx.Params("policy"))
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := s.parse(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}
	response, err := schedulers.ScheduleAll(request, s.options())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) Policies(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"policies": schedulers.Policies()})
}
