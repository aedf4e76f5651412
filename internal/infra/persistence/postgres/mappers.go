package postgres

import (
	"scoop/internal/domain/entity"
	"scoop/internal/infra/persistence/model"
)

func toRoleDomain(data *model.RoleModel) *entity.RoleRecord {
	if data == nil {
		return nil
	}

	return &entity.RoleRecord{
		ID:        data.ID,
		Name:      entity.Role(data.Name),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:        data.ID,
		Name:      data.Name,
		Password:  data.Password,
		RoleID:    data.RoleID,
		Role:      toRoleDomain(data.Role),
		AdminID:   data.AdminID,
		ClientID:  data.ClientID,
		MemberID:  data.MemberID,
		Admin:     toAdminDomain(data.Admin),
		Client:    toClientDomain(data.Client),
		Member:    toMemberDomain(data.Member),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:       data.ID,
		Name:     data.Name,
		Password: data.Password,
		RoleID:   data.RoleID,
		AdminID:  data.AdminID,
		ClientID: data.ClientID,
		MemberID: data.MemberID,
	}
}

func toAdminDomain(data *model.AdminModel) *entity.Admin {
	if data == nil {
		return nil
	}

	return &entity.Admin{
		ID:        data.ID,
		UserID:    data.UserID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toClientDomain(data *model.ClientModel) *entity.Client {
	if data == nil {
		return nil
	}

	client := &entity.Client{
		ID:        data.ID,
		UserID:    data.UserID,
		AddressID: data.AddressID,
		Address:   toAddressDomain(data.Address),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.Members != nil {
		client.Members = make([]*entity.Member, 0, len(data.Members))
		for i := range data.Members {
			client.Members = append(client.Members, toMemberDomain(&data.Members[i]))
		}
	}

	return client
}

func toMemberDomain(data *model.MemberModel) *entity.Member {
	if data == nil {
		return nil
	}

	return &entity.Member{
		ID:           data.ID,
		UserID:       data.UserID,
		ClientID:     data.ClientID,
		Relationship: data.Relationship,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:        data.ID,
		House:     data.House,
		Square:    data.Square,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromAddressDomain(data *entity.Address) *model.AddressModel {
	return &model.AddressModel{
		ID:     data.ID,
		House:  data.House,
		Square: data.Square,
	}
}

func toCatalogItem(data *model.CatalogColumns) entity.CatalogItem {
	return entity.CatalogItem{
		ID:        data.ID,
		Name:      data.Name,
		Price:     data.Price,
		Unit:      data.Unit,
		Available: data.Available,
		Photo:     data.Photo,
		AdminID:   data.AdminID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCatalogItem(data *entity.CatalogItem) model.CatalogColumns {
	return model.CatalogColumns{
		ID:        data.ID,
		Name:      data.Name,
		Price:     data.Price,
		Unit:      data.Unit,
		Available: data.Available,
		Photo:     data.Photo,
		AdminID:   data.AdminID,
	}
}

func toCreamDomain(data *model.CreamModel) *entity.Cream {
	return &entity.Cream{CatalogItem: toCatalogItem(&data.CatalogColumns), Amount: data.Amount}
}

func fromCreamDomain(data *entity.Cream) *model.CreamModel {
	return &model.CreamModel{CatalogColumns: fromCatalogItem(&data.CatalogItem), Amount: data.Amount}
}

func toToppingDomain(data *model.ToppingModel) *entity.Topping {
	return &entity.Topping{CatalogItem: toCatalogItem(&data.CatalogColumns), Amount: data.Amount}
}

func fromToppingDomain(data *entity.Topping) *model.ToppingModel {
	return &model.ToppingModel{CatalogColumns: fromCatalogItem(&data.CatalogItem), Amount: data.Amount}
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	return &entity.Product{
		CatalogItem: toCatalogItem(&data.CatalogColumns),
		Size:        data.Size,
		Description: data.Description,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		CatalogColumns: fromCatalogItem(&data.CatalogItem),
		Size:           data.Size,
		Description:    data.Description,
	}
}

// mapSlice converts persistence rows into domain values.
func mapSlice[M any, E any](rows []M, fn func(*M) E) []E {
	out := make([]E, 0, len(rows))
	for i := range rows {
		out = append(out, fn(&rows[i]))
	}

	return out
}
