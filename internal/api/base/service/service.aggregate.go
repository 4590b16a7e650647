// Composer aggregation: dựng các stage $lookup/$sort/$match dùng chung
// và chạy pipeline với phân trang ($count + $skip/$limit trên cùng pipeline gốc).
package basesvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	basemodels "meta_tube/internal/api/base/models"
	"meta_tube/internal/common"
)

// LookupSpec mô tả một phép join $lookup giữa hai collection
type LookupSpec struct {
	From         string        // Collection nguồn để join
	LocalField   string        // Field bên collection hiện tại
	ForeignField string        // Field bên collection nguồn
	As           string        // Tên field kết quả
	Pipeline     mongo.Pipeline // Pipeline con áp dụng lên collection nguồn (project, match...)
	Unwind       bool          // true: collapse mảng kết quả thành object đơn (null nếu rỗng)
}

// Stages chuyển LookupSpec thành các stage aggregation.
// Khi Unwind bật, thêm $addFields với $first + $ifNull để quan hệ to-one
// trả về object hoặc null thay vì mảng.
func (l LookupSpec) Stages() mongo.Pipeline {
	lookup := bson.M{
		"from":         l.From,
		"localField":   l.LocalField,
		"foreignField": l.ForeignField,
		"as":           l.As,
	}
	if len(l.Pipeline) > 0 {
		lookup["pipeline"] = l.Pipeline
	}

	stages := mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: lookup}},
	}
	if l.Unwind {
		stages = append(stages, bson.D{{Key: "$addFields", Value: bson.M{
			l.As: bson.M{"$ifNull": bson.A{bson.M{"$first": "$" + l.As}, nil}},
		}}})
	}
	return stages
}

// OwnerLookup dựng lookup chuẩn sang collection users cho quan hệ chủ sở hữu.
// Chỉ expose các field công khai của user (fullName, username, avatar),
// không bao giờ lộ password/refreshToken qua join.
func OwnerLookup(usersCollection, localField, as string) LookupSpec {
	return LookupSpec{
		From:         usersCollection,
		LocalField:   localField,
		ForeignField: "_id",
		As:           as,
		Pipeline: mongo.Pipeline{
			bson.D{{Key: "$project", Value: bson.M{
				"fullName": 1,
				"username": 1,
				"avatar":   1,
			}}},
		},
		Unwind: true,
	}
}

// SortStage dựng stage $sort từ input của client, chỉ chấp nhận field trong whitelist.
// sortType "asc"/"1" là tăng dần, còn lại giảm dần. Field ngoài whitelist
// rơi về defaultField giảm dần.
func SortStage(sortBy, sortType string, allowed map[string]bool, defaultField string) bson.D {
	field := defaultField
	order := -1
	if allowed[sortBy] {
		field = sortBy
	}
	if sortType == "asc" || sortType == "1" {
		order = 1
	}
	return bson.D{{Key: "$sort", Value: bson.D{{Key: field, Value: order}}}}
}

// SearchMatch dựng điều kiện $or regex không phân biệt hoa thường trên các field text.
// Trả về nil khi query rỗng.
func SearchMatch(query string, fields ...string) bson.M {
	if query == "" || len(fields) == 0 {
		return nil
	}
	conds := bson.A{}
	for _, f := range fields {
		conds = append(conds, bson.M{f: bson.M{"$regex": query, "$options": "i"}})
	}
	return bson.M{"$or": conds}
}

// AggregatePaginate chạy pipeline với phân trang hai nhánh:
// nhánh đếm (pipeline + $count) và nhánh dữ liệu (pipeline + $skip + $limit).
// Hai nhánh dùng chung pipeline gốc nên total luôn khớp với filter/search.
func AggregatePaginate[T any](ctx context.Context, collection *mongo.Collection, pipeline mongo.Pipeline, page, limit int64) (*basemodels.PaginateResult[T], error) {
	page, limit = basemodels.SanitizePagination(page, limit)
	skip := (page - 1) * limit

	// Nhánh đếm
	countPipeline := append(mongo.Pipeline{}, pipeline...)
	countPipeline = append(countPipeline, bson.D{{Key: "$count", Value: "total"}})

	countCursor, err := collection.Aggregate(ctx, countPipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	var countDocs []struct {
		Total int64 `bson:"total"`
	}
	if err := countCursor.All(ctx, &countDocs); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	var total int64
	if len(countDocs) > 0 {
		total = countDocs[0].Total
	}

	// Nhánh dữ liệu
	dataPipeline := append(mongo.Pipeline{}, pipeline...)
	dataPipeline = append(dataPipeline,
		bson.D{{Key: "$skip", Value: skip}},
		bson.D{{Key: "$limit", Value: limit}},
	)

	cursor, err := collection.Aggregate(ctx, dataPipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var items []T
	if err := cursor.All(ctx, &items); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if items == nil {
		items = []T{}
	}

	return basemodels.NewPaginateResult(items, page, limit, total), nil
}

// AggregateAll chạy pipeline và decode toàn bộ kết quả, không phân trang.
// Dùng cho các truy vấn đã tự giới hạn kích thước (dashboard, chi tiết một document).
func AggregateAll[T any](ctx context.Context, collection *mongo.Collection, pipeline mongo.Pipeline) ([]T, error) {
	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var items []T
	if err := cursor.All(ctx, &items); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// AggregateOne chạy pipeline và trả về document đầu tiên, ErrNotFound nếu rỗng.
func AggregateOne[T any](ctx context.Context, collection *mongo.Collection, pipeline mongo.Pipeline) (T, error) {
	var zero T
	items, err := AggregateAll[T](ctx, collection, pipeline)
	if err != nil {
		return zero, err
	}
	if len(items) == 0 {
		return zero, common.ErrNotFound
	}
	return items[0], nil
}
