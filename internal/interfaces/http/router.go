package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aslanalper2516/wmb-admin-api/internal/application/auth"
	"github.com/aslanalper2516/wmb-admin-api/internal/application/export"
	"github.com/aslanalper2516/wmb-admin-api/internal/application/usecase"
	"github.com/aslanalper2516/wmb-admin-api/internal/domain/repository"
)

// Permisos que exigen las rutas de escritura sensibles.
const (
	PermMenusWrite  = "menus:write"
	PermPricesWrite = "prices:write"
	PermUsersAdmin  = "users:admin"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC    *usecase.CompanyUseCase
	BranchUC     *usecase.BranchUseCase
	MenuUC       *usecase.MenuUseCase
	CategoryUC   *usecase.CategoryUseCase
	MethodUC     *usecase.MethodUseCase
	ProductUC    *usecase.ProductUseCase
	PriceUC      *usecase.PriceUseCase
	IngredientUC *usecase.IngredientUseCase
	UserUC       *usecase.UserUseCase
	CurrencyUC   *usecase.CurrencyUseCase
	ExportUC     *export.MenuExportUseCase
	AuthUC       *auth.AuthUseCase
	RoleRepo     repository.RoleRepository
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (público por ahora; el alta de empresa precede al primer login)
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	menusWrite := RequirePermission(deps.RoleRepo, PermMenusWrite)
	pricesWrite := RequirePermission(deps.RoleRepo, PermPricesWrite)
	usersAdmin := RequirePermission(deps.RoleRepo, PermUsersAdmin)

	// Branches (protegido)
	branches := protected.Group("/branches")
	branchHandler := NewBranchHandler(deps.BranchUC)
	branches.Post("/", branchHandler.Create)
	branches.Get("/", branchHandler.List)
	branches.Get("/:id", branchHandler.GetByID)
	branches.Put("/:id", branchHandler.Update)
	branches.Delete("/:id", branchHandler.Delete)
	branches.Get("/:id/methods", branchHandler.ListMethods)
	branches.Post("/:id/methods", branchHandler.AssignMethod)
	branches.Delete("/:id/methods/:methodId", branchHandler.UnassignMethod)
	branches.Post("/:id/propagate-methods", pricesWrite, branchHandler.PropagateMethods)

	// Menus (protegido); el CRUD cuelga de la sucursal, el resto del menú
	menuHandler := NewMenuHandler(deps.MenuUC, deps.ExportUC)
	branches.Post("/:branchId/menus", menusWrite, menuHandler.Create)
	branches.Get("/:branchId/menus", menuHandler.List)
	menus := protected.Group("/menus")
	menus.Get("/:id", menuHandler.GetByID)
	menus.Put("/:id", menusWrite, menuHandler.Update)
	menus.Delete("/:id", menusWrite, menuHandler.Delete)
	menus.Get("/:id/tree", menuHandler.Tree)
	menus.Post("/:id/assignments", menusWrite, menuHandler.CreateAssignment)
	menus.Put("/:id/assignments/:asgId", menusWrite, menuHandler.UpdateAssignment)
	menus.Delete("/:id/assignments/:asgId", menusWrite, menuHandler.DeleteAssignment)
	menus.Get("/:id/assignments/:asgId/parent-candidates", menuHandler.ParentCandidates)
	menus.Get("/:id/export.pdf", menuHandler.ExportPDF)
	menus.Get("/:id/export.xml", menuHandler.ExportXML)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", menusWrite, categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", menusWrite, categoryHandler.Update)
	categories.Delete("/:id", menusWrite, categoryHandler.Delete)

	// Sales methods (protegido)
	methods := protected.Group("/methods")
	methodHandler := NewMethodHandler(deps.MethodUC)
	methods.Post("/", methodHandler.Create)
	methods.Get("/", methodHandler.List)
	methods.Get("/:id", methodHandler.GetByID)
	methods.Put("/:id", methodHandler.Update)
	methods.Delete("/:id", methodHandler.Delete)

	// Products, prices y recetas (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.PriceUC)
	ingredientHandler := NewIngredientHandler(deps.IngredientUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Get("/:id/completeness", productHandler.Completeness)
	products.Get("/:id/prices", productHandler.ListPrices)
	products.Post("/:id/prices", pricesWrite, productHandler.SetPrice)
	products.Delete("/:id/prices/:priceId", pricesWrite, productHandler.DeletePrice)
	products.Post("/:id/propagate-price", pricesWrite, productHandler.PropagatePrice)
	products.Post("/:id/usages", ingredientHandler.CreateUsage)
	products.Get("/:id/usages", ingredientHandler.ListUsages)

	// Usages sueltos (protegido); update y delete van por id de uso
	usages := protected.Group("/usages")
	usages.Put("/:id", ingredientHandler.UpdateUsage)
	usages.Delete("/:id", ingredientHandler.DeleteUsage)

	// Ingredients (protegido)
	ingredients := protected.Group("/ingredients")
	ingredients.Post("/", ingredientHandler.Create)
	ingredients.Get("/", ingredientHandler.List)
	ingredients.Get("/:id", ingredientHandler.GetByID)
	ingredients.Put("/:id", ingredientHandler.Update)
	ingredients.Delete("/:id", ingredientHandler.Delete)

	// Users y roles (protegido)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id/role", usersAdmin, userHandler.AssignRole)
	users.Post("/:id/deactivate", usersAdmin, userHandler.Deactivate)
	users.Delete("/:id", usersAdmin, userHandler.Delete)

	roles := protected.Group("/roles")
	roles.Post("/", usersAdmin, userHandler.CreateRole)
	roles.Get("/", userHandler.ListRoles)
	roles.Put("/:id", usersAdmin, userHandler.UpdateRole)
	roles.Delete("/:id", usersAdmin, userHandler.DeleteRole)

	// Currencies (protegido, solo lectura)
	currencies := protected.Group("/currencies")
	currencyHandler := NewCurrencyHandler(deps.CurrencyUC)
	currencies.Get("/", currencyHandler.List)
}
