package mediaimpl

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/whispr-campus/whispr/internal/media"
	"github.com/whispr-campus/whispr/pkg/config"
	"github.com/whispr-campus/whispr/pkg/logger"
	"go.uber.org/fx"
)

const keyPrefix = "post-media"

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

// S3Impl uploads to any S3-compatible bucket. With no storage credentials
// it is still constructed, but every upload fails with ErrNotConfigured.
type S3Impl struct {
	s3       s3iface.S3API
	bucket   string
	endpoint string
	cdnURL   string
	logger   logger.Logger
}

func New(opts Opts) (*S3Impl, error) {
	log := opts.Logger.WithComponent("MediaUploader")
	cfg := opts.Config.Storage

	if !opts.Config.StorageConfigured() {
		log.Warn("Media storage not configured, posts will be text-only")
		return &S3Impl{logger: log}, nil
	}

	awsCfg := &aws.Config{
		Credentials: credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
		Region:      aws.String(cfg.Region),
	}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage session: %w", err)
	}

	return NewWithClient(s3.New(sess), cfg.Bucket, cfg.Endpoint, cfg.CDNURL, log), nil
}

// NewWithClient wires an existing S3 client, used by tests.
func NewWithClient(client s3iface.S3API, bucket, endpoint, cdnURL string, log logger.Logger) *S3Impl {
	return &S3Impl{
		s3:       client,
		bucket:   bucket,
		endpoint: endpoint,
		cdnURL:   cdnURL,
		logger:   log,
	}
}

var _ media.Uploader = (*S3Impl)(nil)
