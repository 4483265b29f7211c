package repository

import (
	"context"
	"sort"
	"strconv"

	"taller_movil/internal/domain/entities"
	"taller_movil/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBrandsTableName        = "catalog_brands"
	defaultModelsTableName        = "catalog_models"
	defaultFaultsTableName        = "catalog_faults"
	defaultInterventionsTableName = "catalog_interventions"
	defaultFaultStatsTableName    = "catalog_fault_stats"

	modelsBrandIDIndex = "brand_id-index"
)

type brandItem struct {
	ID   string `dynamodbav:"id"`
	Name string `dynamodbav:"name"`
}

type modelItem struct {
	ID      string `dynamodbav:"id"`
	BrandID string `dynamodbav:"brand_id"`
	Name    string `dynamodbav:"name"`
}

type faultItem struct {
	ID       string `dynamodbav:"id"`
	Name     string `dynamodbav:"name"`
	Category string `dynamodbav:"category,omitempty"`
}

type interventionItem struct {
	ModelID          string `dynamodbav:"model_id"`
	SortKey          string `dynamodbav:"sort_key"` // "<fault_id>#<id>"
	FaultID          string `dynamodbav:"fault_id"`
	ID               string `dynamodbav:"id"`
	Name             string `dynamodbav:"name"`
	BasePrice        string `dynamodbav:"base_price"`
	EstimatedMinutes int    `dynamodbav:"estimated_minutes"`
	Difficulty       string `dynamodbav:"difficulty,omitempty"`
}

type faultStatItem struct {
	ModelID       string `dynamodbav:"model_id"`
	FaultID       string `dynamodbav:"fault_id"`
	FaultName     string `dynamodbav:"fault_name"`
	FaultCategory string `dynamodbav:"fault_category,omitempty"`
	Frequency     int    `dynamodbav:"frequency"`
}

// CatalogDynamoRepository serves the repair catalog reference data from
// DynamoDB.
//
// Table requirements:
//   - brands/faults: PK id (string); small tables, listed with Scan
//   - models: PK id, GSI brand_id-index (PK: brand_id)
//   - interventions: PK model_id, SK fault_id#id (queried by model+fault prefix)
//   - fault_stats: PK model_id, SK fault_id; frequency counters per model
//
// A missing table row never surfaces as an error: the contract is
// success/empty/error, and empty is a plain zero-length slice.

type CatalogDynamoRepository struct {
	ddb                *dynamodb.Client
	brandsTable        string
	modelsTable        string
	faultsTable        string
	interventionsTable string
	faultStatsTable    string
}

var _ interfaces.ICatalogService = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:                ddb,
		brandsTable:        getenvDefault("BRANDS_TABLE", defaultBrandsTableName),
		modelsTable:        getenvDefault("MODELS_TABLE", defaultModelsTableName),
		faultsTable:        getenvDefault("FAULTS_TABLE", defaultFaultsTableName),
		interventionsTable: getenvDefault("INTERVENTIONS_TABLE", defaultInterventionsTableName),
		faultStatsTable:    getenvDefault("FAULT_STATS_TABLE", defaultFaultStatsTableName),
	}
}

func (r *CatalogDynamoRepository) ListBrands(ctx context.Context) ([]entities.Brand, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.brandsTable),
	})
	if err != nil {
		return nil, err
	}

	brands := make([]entities.Brand, 0, len(out.Items))
	for _, raw := range out.Items {
		var it brandItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		brands = append(brands, entities.Brand{ID: it.ID, Name: it.Name})
	}
	sort.Slice(brands, func(i, j int) bool { return brands[i].Name < brands[j].Name })
	return brands, nil
}

func (r *CatalogDynamoRepository) ListModels(ctx context.Context, brandID string) ([]entities.Model, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.modelsTable),
		IndexName:              aws.String(modelsBrandIDIndex),
		KeyConditionExpression: aws.String("brand_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: brandID},
		},
	})
	if err != nil {
		return nil, err
	}

	models := make([]entities.Model, 0, len(out.Items))
	for _, raw := range out.Items {
		var it modelItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		models = append(models, entities.Model{ID: it.ID, BrandID: it.BrandID, Name: it.Name})
	}
	sort.Slice(models, func(i, j int) bool { return models[i].Name < models[j].Name })
	return models, nil
}

func (r *CatalogDynamoRepository) ListFaults(ctx context.Context, category string) ([]entities.Fault, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.faultsTable),
	}
	if category != "" {
		input.FilterExpression = aws.String("category = :cat")
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":cat": &types.AttributeValueMemberS{Value: category},
		}
	}

	out, err := r.ddb.Scan(ctx, input)
	if err != nil {
		return nil, err
	}

	faults := make([]entities.Fault, 0, len(out.Items))
	for _, raw := range out.Items {
		var it faultItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		faults = append(faults, entities.Fault{ID: it.ID, Name: it.Name, Category: it.Category})
	}
	sort.Slice(faults, func(i, j int) bool { return faults[i].Name < faults[j].Name })
	return faults, nil
}

func (r *CatalogDynamoRepository) ListInterventions(ctx context.Context, modelID, faultID string) ([]entities.InterventionTemplate, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.interventionsTable),
		KeyConditionExpression: aws.String("model_id = :mid AND begins_with(sort_key, :fid)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":mid": &types.AttributeValueMemberS{Value: modelID},
			":fid": &types.AttributeValueMemberS{Value: faultID + "#"},
		},
	})
	if err != nil {
		return nil, err
	}

	templates := make([]entities.InterventionTemplate, 0, len(out.Items))
	for _, raw := range out.Items {
		var it interventionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		price, _ := strconv.ParseFloat(it.BasePrice, 64)
		templates = append(templates, entities.InterventionTemplate{
			ID:               it.ID,
			Name:             it.Name,
			BasePrice:        price,
			EstimatedMinutes: it.EstimatedMinutes,
			Difficulty:       it.Difficulty,
		})
	}
	return templates, nil
}

func (r *CatalogDynamoRepository) SuggestFaults(ctx context.Context, modelID string, limit int) ([]entities.FaultSuggestion, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.faultStatsTable),
		KeyConditionExpression: aws.String("model_id = :mid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":mid": &types.AttributeValueMemberS{Value: modelID},
		},
	})
	if err != nil {
		return nil, err
	}

	suggestions := make([]entities.FaultSuggestion, 0, len(out.Items))
	for _, raw := range out.Items {
		var it faultStatItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		suggestions = append(suggestions, entities.FaultSuggestion{
			Fault:     entities.Fault{ID: it.FaultID, Name: it.FaultName, Category: it.FaultCategory},
			Frequency: it.Frequency,
		})
	}
	sort.SliceStable(suggestions, func(i, j int) bool { return suggestions[i].Frequency > suggestions[j].Frequency })
	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions, nil
}
