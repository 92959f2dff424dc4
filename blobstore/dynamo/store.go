package dynamo

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/mr-c/raptor/blobstore"
)

const (
	attrNamespace = "namespace"
	attrName      = "name"
	attrData      = "data"
)

// Client is the subset of the DynamoDB API used by Store.
type Client interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// ErrMalformedItem is returned when a stored item lacks its data attribute.
var ErrMalformedItem = errors.New("dynamo: malformed artifact item")

// Store implements blobstore.BlobStore on a DynamoDB table.
type Store struct {
	client    Client
	table     string
	namespace string
}

// New creates a Store using the default AWS credential chain.
func New(ctx context.Context, table, namespace, region string) (*Store, error) {
	var loadOpts []func(*config.LoadOptions) error
	if region != "" {
		loadOpts = append(loadOpts, config.WithRegion(region))
	}
	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("dynamo: load aws config: %w", err)
	}
	return NewStore(dynamodb.NewFromConfig(cfg), table, namespace), nil
}

// NewStore creates a Store around an existing client.
func NewStore(client Client, table, namespace string) *Store {
	return &Store{client: client, table: table, namespace: namespace}
}

func (s *Store) itemKey(name string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		attrNamespace: &types.AttributeValueMemberS{Value: s.namespace},
		attrName:      &types.AttributeValueMemberS{Value: name},
	}
}

// Open fetches the artifact and serves reads from memory.
func (s *Store) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	data, err := s.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return blobstore.NewBytesBlob(data), nil
}

// Get reads an artifact with a strongly consistent read.
func (s *Store) Get(ctx context.Context, name string) ([]byte, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.table),
		Key:            s.itemKey(name),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, blobstore.ErrNotFound
	}
	data, ok := out.Item[attrData].(*types.AttributeValueMemberB)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMalformedItem, name)
	}
	return data.Value, nil
}

// Put writes the artifact unless an item with the same name exists.
func (s *Store) Put(ctx context.Context, name string, data []byte) error {
	if err := blobstore.ValidateName(name); err != nil {
		return err
	}
	item := s.itemKey(name)
	item[attrData] = &types.AttributeValueMemberB{Value: slices.Clone(data)}

	_, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(s.table),
		Item:                     item,
		ConditionExpression:      aws.String("attribute_not_exists(#n)"),
		ExpressionAttributeNames: map[string]string{"#n": attrName},
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return nil
		}
		return fmt.Errorf("dynamo: put %s: %w", name, err)
	}
	return nil
}

// Delete removes an artifact.
func (s *Store) Delete(ctx context.Context, name string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.table),
		Key:       s.itemKey(name),
	})
	return err
}

// List returns the sorted names in the namespace beginning with prefix.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	cond := "#ns = :ns"
	values := map[string]types.AttributeValue{
		":ns": &types.AttributeValueMemberS{Value: s.namespace},
	}
	if prefix != "" {
		cond += " AND begins_with(#n, :prefix)"
		values[":prefix"] = &types.AttributeValueMemberS{Value: prefix}
	}

	var names []string
	paginator := dynamodb.NewQueryPaginator(s.client, &dynamodb.QueryInput{
		TableName:                 aws.String(s.table),
		KeyConditionExpression:    aws.String(cond),
		ExpressionAttributeNames:  map[string]string{"#ns": attrNamespace, "#n": attrName},
		ExpressionAttributeValues: values,
		ProjectionExpression:      aws.String("#n"),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			if n, ok := item[attrName].(*types.AttributeValueMemberS); ok {
				names = append(names, n.Value)
			}
		}
	}
	slices.Sort(names)
	return names, nil
}
