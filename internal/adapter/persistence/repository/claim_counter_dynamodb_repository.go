package repository

import (
	"context"
	"fmt"
	"strconv"

	"warranty_intake/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultClaimCountersTableName = "claim_counters"

	// One logical counter for the whole service; sharding is out of scope.
	warrantyCounterID = "warranty"

	// Claim numbers start above the seed: the first allocation returns seed+1.
	defaultClaimNumberSeed = 100000
)

type counterItem struct {
	LastValue int64 `dynamodbav:"last_value"`
}

// ClaimCounterDynamoRepository persists the claim-number counter in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The whole allocation is one UpdateItem. DynamoDB applies the update
// expression atomically against the current item, so two concurrent calls can
// never read the same prior value, and the incremented value is durably
// committed before it is returned. `if_not_exists` creates the counter lazily
// with the configured seed on the very first allocation.

type ClaimCounterDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	seed      int64
}

var _ interfaces.IClaimCounterRepository = (*ClaimCounterDynamoRepository)(nil)

func NewClaimCounterDynamoRepository(ddb *dynamodb.Client) *ClaimCounterDynamoRepository {
	return &ClaimCounterDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLAIM_COUNTERS_TABLE", defaultClaimCountersTableName),
		seed:      getenvInt64Default("CLAIM_NUMBER_SEED", defaultClaimNumberSeed),
	}
}

func (r *ClaimCounterDynamoRepository) Next(ctx context.Context) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: warrantyCounterID},
		},
		UpdateExpression: aws.String("SET #v = if_not_exists(#v, :seed) + :one"),
		ExpressionAttributeNames: map[string]string{
			"#v": "last_value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":seed": &types.AttributeValueMemberN{Value: strconv.FormatInt(r.seed, 10)},
			":one":  &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, fmt.Errorf("claim counter update: %w", err)
	}

	var it counterItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return 0, fmt.Errorf("claim counter attributes: %w", err)
	}
	if it.LastValue <= 0 {
		return 0, fmt.Errorf("claim counter returned invalid value %d", it.LastValue)
	}
	return it.LastValue, nil
}
