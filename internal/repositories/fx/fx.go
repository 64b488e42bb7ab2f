package fx

import (
	"github.com/whispr-campus/whispr/internal/repositories/comment"
	"github.com/whispr-campus/whispr/internal/repositories/post"
	"github.com/whispr-campus/whispr/internal/repositories/reaction"
	"github.com/whispr-campus/whispr/internal/repositories/university"
	"go.uber.org/fx"
)

var Module = fx.Options(
	university.Module,
	post.Module,
	comment.Module,
	reaction.Module,
)
