package apply

import (
	"context"
	"fmt"

	"github.com/elC0mpa/gcs-doctor/model"
	"github.com/elC0mpa/gcs-doctor/pkg/logger"
	"github.com/elC0mpa/gcs-doctor/service"
	"github.com/elC0mpa/gcs-doctor/service/recommend"
	"github.com/jedib0t/go-pretty/v6/text"
)

func NewService(storageService service.StorageService, approver service.Approver) *applyService {
	return &applyService{
		storageService: storageService,
		approver:       approver,
		log:            logger.Log,
	}
}

// Apply executes the recommendations of every snapshot, one by one.
// Each recommendation is gated by the injected approver. A failure is
// logged with its bucket and action and never stops the remaining
// recommendations or buckets.
func (s *applyService) Apply(ctx context.Context, snapshots []model.BucketSnapshot) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 🔧 APPLYING RECOMMENDATIONS"))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	for _, snapshot := range snapshots {
		if len(snapshot.Recommendations) == 0 {
			continue
		}

		fmt.Printf("Processing bucket: %s\n", text.FgHiCyan.Sprint(snapshot.Name))

		for _, recommendation := range snapshot.Recommendations {
			fmt.Printf("  - %s\n", recommendation.Action)

			if !s.approver.Approve(snapshot.Name, recommendation) {
				fmt.Println("    Skipped.")
				continue
			}

			if err := s.applyRecommendation(ctx, snapshot.Name, recommendation); err != nil {
				s.log.Error().
					Err(err).
					Str("bucket", snapshot.Name).
					Str("action", recommendation.Action).
					Msg("failed to apply recommendation")
			}
		}
	}
}

func (s *applyService) applyRecommendation(ctx context.Context, bucket string, recommendation model.Recommendation) error {
	switch recommendation.Kind {
	case model.RecommendationStorageClass:
		targetTier := recommendation.TargetTier()
		if targetTier == "" {
			return fmt.Errorf("no target storage class in action %q", recommendation.Action)
		}

		if err := s.storageService.SetStorageClass(ctx, bucket, targetTier); err != nil {
			return err
		}
		fmt.Printf("    %s Changed default storage class to %s\n", text.FgHiGreen.Sprint("✓"), targetTier)

	case model.RecommendationLifecycle:
		if err := s.storageService.SetLifecyclePolicy(ctx, bucket, recommend.LifecyclePolicy()); err != nil {
			return err
		}
		fmt.Printf("    %s Added lifecycle rules\n", text.FgHiGreen.Sprint("✓"))

	case model.RecommendationVersioning:
		// Advisory only, no mutation
		info, err := s.storageService.GetBucket(ctx, bucket)
		if err != nil {
			return err
		}
		if info.VersioningEnabled {
			fmt.Println("    ℹ Versioning is enabled, consider lifecycle rules that delete old versions")
		} else {
			fmt.Println("    ℹ Versioning is disabled, no action needed")
		}
	}

	return nil
}
