package moderationimpl

import (
	"net/http"
	"strings"
	"time"

	"github.com/whispr-campus/whispr/internal/moderation"
	"github.com/whispr-campus/whispr/pkg/config"
	"github.com/whispr-campus/whispr/pkg/logger"
	"go.uber.org/fx"
)

const defaultTimeout = 10 * time.Second

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type ModerationImpl struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	logger     logger.Logger
}

func New(opts Opts) *ModerationImpl {
	log := opts.Logger.WithComponent("Moderation")
	if !opts.Config.ModerationConfigured() {
		log.Warn("OpenAI API key not configured, every submission will be refused")
	}

	timeout := opts.Config.OpenAI.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &ModerationImpl{
		httpClient: &http.Client{Timeout: timeout},
		apiKey:     opts.Config.OpenAI.ApiKey,
		baseURL:    strings.TrimRight(opts.Config.OpenAI.BaseURL, "/"),
		logger:     log,
	}
}

var _ moderation.Client = (*ModerationImpl)(nil)
