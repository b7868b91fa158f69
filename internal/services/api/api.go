// Package api provides the HTTP API for the application
package api

import (
	"time"

	"lunacycle/internal/core/version"
	"lunacycle/internal/platform/config"
	"lunacycle/internal/platform/logger"
	phttp "lunacycle/internal/platform/net/http"
	"lunacycle/internal/platform/net/middleware"

	"lunacycle/internal/modkit"
	"lunacycle/internal/modkit/httpkit"
	"lunacycle/internal/modkit/module"
	"lunacycle/internal/modkit/swaggerkit"

	chatdomain "lunacycle/internal/services/api/chat/domain"
	chatmod "lunacycle/internal/services/api/chat/module"
	cycledomain "lunacycle/internal/services/api/cycle/domain"
	cyclemod "lunacycle/internal/services/api/cycle/module"
	forummod "lunacycle/internal/services/api/forum/module"
	metamod "lunacycle/internal/services/api/meta/module"
	staticmod "lunacycle/internal/services/api/static/module"
)

// Options are the API options
type Options struct {
	// Config is the service scope, normally CORE_API_
	Config config.Conf
	// Logger is the parent of every module logger; nil means the root logger
	Logger *logger.Logger

	// Generator answers /api/chat; required
	Generator chatdomain.Generator

	EnableSwagger bool

	// Now and Loc fix the clock for the cycle and forum modules; nil means wall clock and time.Local
	Now func() time.Time
	Loc *time.Location
}

// Mount mounts the API service onto the given router and returns the registry
// holding every module's ports
func Mount(r phttp.Router, opt Options) *module.Registry {
	var docs *swaggerkit.Docs
	if opt.EnableSwagger {
		docs = swaggerkit.New("LunaCycle API", version.Info(0).Version, "/")
	}

	// shared deps for modules
	deps := modkit.Deps{
		Log:  opt.Logger,
		Cfg:  opt.Config,
		Now:  opt.Now,
		Loc:  opt.Loc,
		Docs: docs,
	}

	log := deps.Logger("api")

	// middleware must be registered before any route
	r.Use(httpkit.CommonStack(httpkit.StackOptions{
		CORS: middleware.CORSOptions{
			AllowedOrigins: opt.Config.MayCSV("CORS_ORIGINS", nil),
		},
		Slow:    opt.Config.MayDuration("SLOW", 0),
		Timeout: opt.Config.MayDuration("REQUEST_TIMEOUT", httpkit.DefaultTimeout),
	})...)

	static := staticmod.New(deps)
	meta := metamod.New(deps)
	cycle := cyclemod.New(deps)
	forum := forummod.New(deps)

	reg := module.NewRegistry()
	reg.Add(static, meta, cycle, forum)

	// chat reads the cycle service back out of the registry
	cyclePort, ok := module.PortsAs[cycledomain.ServicePort](reg, cycle.Name())
	if !ok {
		log.Warn().Msg("cycle port missing; chat will ignore last")
	}
	chat := chatmod.New(deps, modkit.WithPorts(chatmod.Ports{
		Generator: opt.Generator,
		Cycle:     cyclePort,
	}))
	reg.Add(chat)

	// static first: the not-found fallback is inherited by every subrouter mounted after it
	module.MountAll(r, static, meta, cycle)

	httpkit.MountAPI(r, "", nil, func(api httpkit.Router) {
		module.MountAll(api, forum, chat)
		swaggerkit.Mount(api, docs, "/docs", httpkit.APIPrefix("")+"/docs")
	})

	// PROFILER and PROFILER_PREFIX come from the service scope
	profiler := phttp.MountProfiler(r, opt.Config)

	log.Debug().
		Strs("modules", reg.Names()).
		Bool("swagger", docs != nil).
		Bool("profiler", profiler).
		Msg("api mounted")
	return reg
}
