package server

import (
	"context"

	procurementpb "github.com/procurehq/procurement-tracker/gen/proto/procurement/v1"
)

func (s *ProcurementService) GetCacheStats(_ context.Context, _ *procurementpb.GetCacheStatsRequest) (*procurementpb.GetCacheStatsResponse, error) {
	st := s.cache.Stats()
	return &procurementpb.GetCacheStatsResponse{
		Hits:                 st.Hits,
		Misses:               st.Misses,
		HitRate:              st.HitRate,
		AvgHitTimeMs:         st.AvgHitTimeMS,
		AvgMissTimeMs:        st.AvgMissTimeMS,
		EstimatedTimeSavedMs: st.EstimatedTimeSavedMS,
		Entries:              int64(st.Entries),
		SetFailures:          st.SetFailures,
	}, nil
}
