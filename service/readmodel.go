package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SaleDocument is the denormalized sale kept in the read-model store, one
// document per sale keyed by the sale id.
type SaleDocument struct {
	ID           uint      `bson:"_id" json:"id"`
	Number       string    `bson:"number" json:"number"`
	Date         time.Time `bson:"date" json:"date"`
	CustomerID   uint      `bson:"customer_id" json:"customer_id"`
	CustomerName string    `bson:"customer_name" json:"customer_name"`
	BranchID     uint      `bson:"branch_id" json:"branch_id"`
	BranchName   string    `bson:"branch_name" json:"branch_name"`
	Total        float64   `bson:"total" json:"total"`
	Cancelled    bool      `bson:"cancelled" json:"cancelled"`
}

// BranchDailySummary is one row of the branch/day aggregation. Date is the
// calendar day formatted as YYYY-MM-DD.
type BranchDailySummary struct {
	BranchID   uint    `bson:"branch_id" json:"branch_id"`
	BranchName string  `bson:"branch_name" json:"branch_name"`
	Date       string  `bson:"date" json:"date"`
	Total      float64 `bson:"total" json:"total"`
}

// SaleProjector receives the post-commit state of a sale. Projection is
// best-effort: failures must not roll back the primary-store write.
type SaleProjector interface {
	UpsertSale(ctx context.Context, doc SaleDocument) error
}

// SalesReadModel stores sale projections in Mongo and serves the branch/day
// summary query.
type SalesReadModel struct {
	coll *mongo.Collection
}

func NewSalesReadModel(db *mongo.Database) *SalesReadModel {
	return &SalesReadModel{coll: db.Collection("sales")}
}

// UpsertSale replaces the document for doc.ID, inserting it when absent.
func (rm *SalesReadModel) UpsertSale(ctx context.Context, doc SaleDocument) error {
	_, err := rm.coll.ReplaceOne(ctx,
		bson.M{"_id": doc.ID}, doc,
		options.Replace().SetUpsert(true))
	return err
}

// DailySummary aggregates sale totals per branch and calendar day, bounded
// by an inclusive date range when from/to are supplied. Cancelled sales are
// summed like any other document.
func (rm *SalesReadModel) DailySummary(ctx context.Context, from, to *time.Time) ([]BranchDailySummary, error) {
	dateCond := bson.M{}
	if from != nil {
		dateCond["$gte"] = *from
	}
	if to != nil {
		// inclusive upper bound: extend to the end of the day
		dateCond["$lte"] = to.Add(24*time.Hour - time.Nanosecond)
	}

	pipeline := mongo.Pipeline{}
	if len(dateCond) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{"date": dateCond}}})
	}
	pipeline = append(pipeline,
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"branch_id":   "$branch_id",
				"branch_name": "$branch_name",
				"date":        bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$date"}},
			},
			"total": bson.M{"$sum": "$total"},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":         0,
			"branch_id":   "$_id.branch_id",
			"branch_name": "$_id.branch_name",
			"date":        "$_id.date",
			"total":       "$total",
		}}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "branch_id", Value: 1},
			{Key: "date", Value: 1},
		}}},
	)

	cur, err := rm.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []BranchDailySummary
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
