package main

import (
	"dcars/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.ProfileModel{},
		model.VehicleModel{},
		model.VehicleImageModel{},
		model.FavoriteModel{},
		model.ConversationModel{},
		model.MessageModel{},
		model.TransactionModel{},
		model.SubscriptionModel{},
		model.WebhookEventModel{},
		model.NotificationModel{},
		model.UserDeviceModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
