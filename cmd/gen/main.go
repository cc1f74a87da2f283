// Command gen writes GORM Gen typed query helpers for the persistence models into
// internal/infra/persistence/query. The repositories use *gorm.DB directly; the generated
// package is for ad hoc tooling and data fixes.
package main

import (
	"knect/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.AuthenticationModel{},
		model.RefreshTokenModel{},
		model.ProfileModel{},
		model.ConnectionModel{},
		model.UserDeviceModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
