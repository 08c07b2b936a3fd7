package repository

import (
	"context"
	"testing"

	"doctor_app/internal/adapter/persistence/table/mocks"
	"doctor_app/internal/domain/entities"
	"doctor_app/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/mock/gomock"
)

func s(v string) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: v}
}

func TestPatientDynamoRepository_ListByDoctor_IndexSelection(t *testing.T) {
	cases := []struct {
		sortKey   entities.PatientSortKey
		order     entities.SortOrder
		wantIndex string
		forward   bool
	}{
		{entities.PatientSortNone, entities.SortAscending, "doctorId-index", true},
		{entities.PatientSortByName, entities.SortAscending, "doctorId-name-index", true},
		{entities.PatientSortByLatestReportAt, entities.SortDescending, "doctorId-latestReportDate-index", false},
	}

	for _, c := range cases {
		t.Run(string(c.sortKey)+"/"+string(c.order), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			api := mocks.NewMockDynamoAPI(ctrl)
			repo := NewPatientDynamoRepository(api, "patients")

			api.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
					if aws.ToString(in.IndexName) != c.wantIndex {
						t.Fatalf("expected index %s, got %s", c.wantIndex, aws.ToString(in.IndexName))
					}
					if aws.ToBool(in.ScanIndexForward) != c.forward {
						t.Fatalf("expected ScanIndexForward=%v", c.forward)
					}
					if aws.ToInt32(in.Limit) != 25 {
						t.Fatalf("expected limit 25, got %d", aws.ToInt32(in.Limit))
					}
					return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{
						{"patientId": s("p-1"), "doctorId": s("d-1"), "name": s("Ada")},
					}}, nil
				})

			page, err := repo.ListByDoctor(context.Background(), "d-1", c.sortKey, c.order, interfaces.PageRequest{Limit: 25})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if page.IndexName != c.wantIndex || len(page.Patients) != 1 || page.Patients[0].Name != "Ada" {
				t.Fatalf("unexpected page: %+v", page)
			}
			if page.NextCursor != "" {
				t.Fatalf("expected no cursor, got %q", page.NextCursor)
			}
		})
	}
}

func TestPatientDynamoRepository_GetByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	api := mocks.NewMockDynamoAPI(ctrl)
	repo := NewPatientDynamoRepository(api, "patients")

	api.EXPECT().GetItem(gomock.Any(), gomock.Any(), gomock.Any()).Return(&dynamodb.GetItemOutput{}, nil)

	p, err := repo.GetByID(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.PatientID != "" {
		t.Fatalf("expected zero patient, got %+v", p)
	}
}

func TestPatientDynamoRepository_UpdateLatestReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	api := mocks.NewMockDynamoAPI(ctrl)
	repo := NewPatientDynamoRepository(api, "patients")

	api.EXPECT().UpdateItem(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
			if aws.ToString(in.TableName) != "patients" {
				t.Fatalf("unexpected table %s", aws.ToString(in.TableName))
			}
			if aws.ToString(in.ConditionExpression) != "attribute_exists(#pk)" {
				t.Fatalf("unexpected condition %s", aws.ToString(in.ConditionExpression))
			}
			if in.ExpressionAttributeNames["#s0"] != "latestReportDate" || in.ExpressionAttributeNames["#s1"] != "latestReportId" {
				t.Fatalf("unexpected names %+v", in.ExpressionAttributeNames)
			}
			return &dynamodb.UpdateItemOutput{}, nil
		})

	found, err := repo.UpdateLatestReport(context.Background(), "p-1", "r-1", "2024-05-01T10:00:00.000000Z")
	if err != nil || !found {
		t.Fatalf("expected found without error, got %v %v", found, err)
	}
}

func TestReportDynamoRepository_ListRecentCompleteByDoctor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	api := mocks.NewMockDynamoAPI(ctrl)
	repo := NewReportDynamoRepository(api, "reports")

	api.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
			if aws.ToString(in.IndexName) != "doctorId-reportDate-index" {
				t.Fatalf("unexpected index %s", aws.ToString(in.IndexName))
			}
			if aws.ToBool(in.ScanIndexForward) {
				t.Fatalf("expected newest first")
			}
			if in.ExpressionAttributeNames["#f"] != "currentStatus" {
				t.Fatalf("expected status filter")
			}
			return &dynamodb.QueryOutput{
				Items: []map[string]types.AttributeValue{{
					"reportId":      s("r-1"),
					"patientId":     s("p-1"),
					"doctorId":      s("d-1"),
					"currentStatus": s("Complete"),
					"billingData":   &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{"code": s("99213")}},
				}},
				LastEvaluatedKey: map[string]types.AttributeValue{"reportId": s("r-1"), "doctorId": s("d-1"), "reportDate": s("x")},
			}, nil
		})

	page, err := repo.ListRecentCompleteByDoctor(context.Background(), "d-1", interfaces.PageRequest{Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Reports) != 1 || page.Reports[0].CurrentStatus != entities.ReportStatusComplete {
		t.Fatalf("unexpected reports: %+v", page.Reports)
	}
	billing, ok := page.Reports[0].BillingData.(map[string]any)
	if !ok || billing["code"] != "99213" {
		t.Fatalf("unexpected billing data: %#v", page.Reports[0].BillingData)
	}
	if page.NextCursor == "" {
		t.Fatalf("expected a continuation cursor")
	}
}

func TestUserDynamoRepository_GetByEmail_LowerCases(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	api := mocks.NewMockDynamoAPI(ctrl)
	repo := NewUserDynamoRepository(api, "users")

	api.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
			got := in.ExpressionAttributeValues[":k"].(*types.AttributeValueMemberS).Value
			if got != "doc@example.com" {
				t.Fatalf("expected lower-cased email, got %s", got)
			}
			return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{
				{"userId": s("u-1"), "email": s("doc@example.com"), "isActive": &types.AttributeValueMemberBOOL{Value: true}},
			}}, nil
		})

	u, err := repo.GetByEmail(context.Background(), "Doc@Example.COM")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.UserID != "u-1" || !u.IsActive {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestUserDynamoRepository_UpdateDefaultTemplate_Mismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	api := mocks.NewMockDynamoAPI(ctrl)
	repo := NewUserDynamoRepository(api, "users")

	api.EXPECT().UpdateItem(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &types.ConditionalCheckFailedException{Message: aws.String("condition")})

	u, err := repo.UpdateDefaultTemplate(context.Background(), "u-1", "other@example.com", "soap")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.UserID != "" {
		t.Fatalf("expected zero user, got %+v", u)
	}
}

func TestTemplateDynamoRepository_ListAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	api := mocks.NewMockDynamoAPI(ctrl)
	repo := NewTemplateDynamoRepository(api, "templates")

	api.EXPECT().Scan(gomock.Any(), gomock.Any(), gomock.Any()).Return(&dynamodb.ScanOutput{
		Items: []map[string]types.AttributeValue{{"templateId": s("t-1"), "title": s("SOAP")}},
	}, nil)

	got, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID() != "t-1" || got[0]["title"] != "SOAP" {
		t.Fatalf("unexpected templates: %+v", got)
	}
}
