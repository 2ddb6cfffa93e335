package api

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"k8s.io/klog/v2"

	"github.com/nluthra2001/schedsim/internal/config"
	"github.com/nluthra2001/schedsim/internal/report"
	"github.com/nluthra2001/schedsim/internal/scheduler"
)

// Server exposes the simulators over HTTP.
type Server struct {
	app     *fiber.App
	cfg     *config.Config
	limiter *rateLimiter
}

func NewServer(cfg *config.Config) *Server {
	s := &Server{
		app: fiber.New(fiber.Config{
			DisableStartupMessage: true,
			ErrorHandler:          errorHandler,
		}),
		cfg:     cfg,
		limiter: newRateLimiter(cfg.Server.RateLimit),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})

	api := s.app.Group("/api")
	v1 := api.Group("/v1", s.limiter.handler())
	{
		v1.Get("/algorithms", s.Algorithms)
		v1.Post("/schedule/all", s.ScheduleAll)
		v1.Post("/schedule/:algorithm", s.Schedule)
	}
}

func (s *Server) Listen() error {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	klog.InfoS("Starting API server", "addr", addr)
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) Algorithms(c *fiber.Ctx) error {
	algorithms := make([]fiber.Map, 0, len(scheduler.Algorithms()))
	for _, alg := range scheduler.Algorithms() {
		algorithms = append(algorithms, fiber.Map{"name": alg, "title": alg.Title()})
	}
	return c.JSON(fiber.Map{"algorithms": algorithms})
}

func (s *Server) Schedule(c *fiber.Ctx) error {
	alg, err := scheduler.ParseAlgorithm(c.Params("algorithm"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	req, processes, err := s.parseRequest(c)
	if err != nil {
		return err
	}
	opts := req.options(s.cfg.Options())
	if err := s.checkDispatches(opts, processes, alg); err != nil {
		return err
	}

	res, err := scheduler.Run(alg, opts, processes)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	klog.V(2).InfoS("Scheduled request", "algorithm", alg, "run", res.RunID, "ip", c.IP())
	return c.JSON(report.Summarize(res))
}

func (s *Server) ScheduleAll(c *fiber.Ctx) error {
	req, processes, err := s.parseRequest(c)
	if err != nil {
		return err
	}
	opts := req.options(s.cfg.Options())
	if err := s.checkDispatches(opts, processes, scheduler.Algorithms()...); err != nil {
		return err
	}

	results, err := scheduler.RunAll(opts, processes)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	resp := ScheduleAllResponse{Results: make([]report.Summary, len(results))}
	for i, res := range results {
		resp.Results[i] = report.Summarize(res)
	}
	klog.V(2).InfoS("Scheduled request", "algorithm", "all", "ip", c.IP())
	return c.JSON(resp)
}

func (s *Server) parseRequest(c *fiber.Ctx) (ScheduleRequest, []scheduler.Process, error) {
	var req ScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return req, nil, fiber.NewError(fiber.StatusBadRequest, "invalid request format")
	}
	if limit := s.cfg.Server.Limits.MaxProcesses; limit > 0 && len(req.Processes) > limit {
		return req, nil, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("%v: %d processes, at most %d allowed", ErrRequestTooLarge, len(req.Processes), limit))
	}
	processes, err := scheduler.NewProcesses(req.Processes)
	if err != nil {
		return req, nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return req, processes, nil
}

// checkDispatches rejects requests whose schedule would record more gantt
// slices than the server allows.
func (s *Server) checkDispatches(opts scheduler.Options, processes []scheduler.Process, algs ...scheduler.Algorithm) error {
	limit := s.cfg.Server.Limits.MaxDispatches
	if limit <= 0 {
		return nil
	}
	for _, alg := range algs {
		if n := scheduler.Dispatches(alg, opts, processes); n > limit {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("%v: %s needs %d dispatches, at most %d allowed", ErrRequestTooLarge, alg, n, limit))
		}
	}
	return nil
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code == fiber.StatusInternalServerError {
		klog.ErrorS(err, "Request failed", "path", c.Path())
	}
	return c.Status(code).JSON(ErrorResponse{Error: err.Error()})
}
