package planstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
	"github.com/muhammadolammi/studyplanapi/internal/planner"
)

// R2 stores each plan as one JSON object in a Cloudflare R2 bucket. It is
// the failover path behind the Postgres primary.
type R2 struct {
	client *s3.Client
	bucket string
}

func NewR2(awsConfig aws.Config, accountID, bucket string) *R2 {
	client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountID))
	})
	return &R2{client: client, bucket: bucket}
}

func planKey(id uuid.UUID) string {
	return fmt.Sprintf("plans/%s.json", id)
}

func (s *R2) Get(ctx context.Context, id uuid.UUID) (*planner.StudyPlan, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(planKey(id)),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get plan object: %w", err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan object body: %w", err)
	}

	plan := &planner.StudyPlan{}
	if err := json.Unmarshal(body, plan); err != nil {
		return nil, fmt.Errorf("failed to decode plan object: %w", err)
	}
	return plan, nil
}

func (s *R2) Put(ctx context.Context, plan *planner.StudyPlan) error {
	body, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(planKey(plan.ID)),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to put plan object: %w", err)
	}
	return nil
}
