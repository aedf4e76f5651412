package impl

import (
	"scoop/internal/domain/listing"
	"scoop/internal/domain/repository"
)

func catalogFields(extra ...listing.Field) []listing.Field {
	return append([]listing.Field{
		listing.String("name", "name"),
		listing.Number("price", "price"),
		listing.String("unit", "unit"),
		listing.Bool("available", "available"),
		listing.UUID("adminId", "admin_id"),
	}, extra...)
}

var (
	creamSchema   = listing.NewSchema("creams", catalogFields(listing.Number("amount", "amount"))...)
	toppingSchema = listing.NewSchema("toppings", catalogFields(listing.Number("amount", "amount"))...)
	productSchema = listing.NewSchema("products", catalogFields(
		listing.Number("size", "size"),
		listing.String("description", "description"),
	)...)

	userSchema = listing.NewSchema("users",
		listing.String("name", "name"),
		listing.UUID("roleId", "role_id"),
		listing.UUID("adminId", "admin_id"),
		listing.UUID("clientId", "client_id"),
		listing.UUID("memberId", "member_id"),
	).WithIncludes(repository.IncludeRole, repository.IncludeAdmin, repository.IncludeClient, repository.IncludeMember)

	adminSchema = listing.NewSchema("admins",
		listing.UUID("userId", "user_id"),
	)

	clientSchema = listing.NewSchema("clients",
		listing.UUID("userId", "user_id"),
		listing.UUID("addressId", "address_id"),
	).WithIncludes(repository.IncludeAddress, repository.IncludeMembers)

	memberSchema = listing.NewSchema("members",
		listing.UUID("userId", "user_id"),
		listing.UUID("clientId", "client_id"),
		listing.String("relationship", "relationship"),
	)

	addressSchema = listing.NewSchema("addresses",
		listing.String("house", "house"),
		listing.String("square", "square"),
	)
)
