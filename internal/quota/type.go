package quota

import "smap-engine/internal/model"

type QuotaOutput struct {
	Quota model.Quota
}
