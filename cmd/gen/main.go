package main

import (
	"clubefast/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.CustomerModel{},
		model.PrizeModel{},
		model.RedemptionModel{},
		model.OrderModel{},
		model.OrderItemModel{},
		model.PointsHistoryModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
