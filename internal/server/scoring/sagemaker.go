package scoring

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sagemakerruntime"
)

const invokeTimeout = 10 * time.Second

// SageMakerClient invokes a SageMaker inference endpoint. It is constructed
// once at startup and injected into the recommendation service; no package
// level client exists.
type SageMakerClient struct {
	runtime      *sagemakerruntime.Client
	endpointName string
}

// NewSageMakerClient resolves AWS configuration for the given region and
// returns a client bound to endpointName.
func NewSageMakerClient(ctx context.Context, region, endpointName string) (*SageMakerClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("aws config error: %w", err)
	}

	return &SageMakerClient{
		runtime:      sagemakerruntime.NewFromConfig(cfg),
		endpointName: endpointName,
	}, nil
}

func (c *SageMakerClient) Invoke(ctx context.Context, payload []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, invokeTimeout)
	defer cancel()

	out, err := c.runtime.InvokeEndpoint(ctx, &sagemakerruntime.InvokeEndpointInput{
		EndpointName: aws.String(c.endpointName),
		ContentType:  aws.String("application/json"),
		Body:         payload,
	})
	if err != nil {
		return nil, fmt.Errorf("invoke endpoint error: %w", err)
	}

	return out.Body, nil
}
