// Package dynamo stores correction artifacts as DynamoDB items.
//
// Artifacts are a few kilobytes, far below the 400 KB item limit, so one item
// holds one artifact and a write is atomic by construction. Items are
// published with attribute_not_exists so the first writer wins.
//
// Table schema:
//   - Partition key: namespace (string), e.g. the index directory or a site name
//   - Sort key: name (string), the artifact key
//
// Create table with:
//
//	aws dynamodb create-table \
//	  --table-name raptor-corrections \
//	  --attribute-definitions AttributeName=namespace,AttributeType=S AttributeName=name,AttributeType=S \
//	  --key-schema AttributeName=namespace,KeyType=HASH AttributeName=name,KeyType=RANGE \
//	  --billing-mode PAY_PER_REQUEST
package dynamo
