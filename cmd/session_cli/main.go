package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"storefront/internal/api"
	"storefront/internal/config"
	"storefront/internal/currency"
	"storefront/internal/domain"
	"storefront/internal/service"
	"storefront/internal/tokenstore"
	"storefront/internal/validation"
)

func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	store := buildTokenStore(ctx, cfg, logger)
	client := api.NewClient(cfg.APIBaseURL, &http.Client{Timeout: cfg.APITimeout}, store, logger)
	authSvc := service.NewAuthService(logger, client)
	validator := validation.New(nil)
	formatter := currency.NewFormatter(cfg.DefaultLocale)

	authSvc.Restore(ctx)
	printStatus(ctx, authSvc)

	for {
		fmt.Println("\n===== Storefront =====")
		fmt.Println("[1] Iniciar sesion")
		fmt.Println("[2] Registrar cuenta personal")
		fmt.Println("[3] Registrar cuenta de empresa")
		fmt.Println("[4] Ver perfil")
		fmt.Println("[5] Editar perfil")
		fmt.Println("[6] Renovar token")
		fmt.Println("[7] Estado de la sesion")
		fmt.Println("[8] Verificar email")
		fmt.Println("[9] Reenviar verificacion")
		fmt.Println("[P] Formatear precio")
		fmt.Println("[L] Cerrar sesion")
		fmt.Println("[Q] Salir")
		fmt.Print("Opcion: ")

		choice := strings.ToUpper(readLine(reader))
		switch choice {
		case "1":
			loginFlow(ctx, reader, authSvc, validator)
		case "2":
			registerPersonalFlow(ctx, reader, authSvc, validator)
		case "3":
			registerBusinessFlow(ctx, reader, authSvc, validator)
		case "4":
			if err := authSvc.FetchUser(ctx); err != nil {
				fmt.Printf("No se pudo obtener el perfil: %s\n", api.DetailOr(err, err.Error()))
			}
			printUser(authSvc.User())
		case "5":
			updateFlow(ctx, reader, authSvc)
		case "6":
			if err := authSvc.RefreshToken(ctx); err != nil {
				fmt.Printf("Renovacion rechazada: %s\n", api.DetailOr(err, err.Error()))
			} else {
				fmt.Println("Token renovado.")
			}
		case "7":
			printStatus(ctx, authSvc)
		case "8":
			fmt.Print("Token de verificacion: ")
			printMessage(authSvc.VerifyEmail(ctx, readLine(reader)))
		case "9":
			fmt.Print("Email: ")
			printMessage(authSvc.ResendVerification(ctx, readLine(reader)))
		case "P":
			priceFlow(reader, formatter)
		case "L":
			authSvc.Logout(ctx)
			fmt.Println("Sesion cerrada.")
		case "Q":
			return
		default:
			fmt.Println("Opcion invalida.")
		}
	}
}

// buildTokenStore elige donde persiste el token entre ejecuciones. Si redis no responde se usa el archivo.
func buildTokenStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) tokenstore.TokenStore {
	switch strings.ToLower(cfg.TokenStore) {
	case "memory":
		return tokenstore.NewMemoryStore(cfg.AuthTokenMaxAge)
	case "redis":
		if cfg.RedisAddr == "" {
			logger.Warn("redis token store requested without REDIS_ADDR, using file store")
			break
		}
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, using file store", zap.Error(err))
			_ = redisClient.Close()
			break
		}
		return tokenstore.NewRedisStore(redisClient, cfg.SessionKey, cfg.AuthTokenMaxAge)
	}
	return tokenstore.NewFileStore(cfg.TokenFile, cfg.AuthTokenMaxAge)
}

func loginFlow(ctx context.Context, reader *bufio.Reader, authSvc *service.AuthService, validator *validation.Validator) {
	form := validation.LoginForm{
		Email:    prompt(reader, "Email: "),
		Password: prompt(reader, "Password: "),
	}
	if !valid(validator, &form) {
		return
	}
	res := authSvc.Login(ctx, form.Email, form.Password)
	if !res.Success {
		fmt.Printf("Error: %s\n", res.Error)
		return
	}
	fmt.Printf("Bienvenido, %s\n", authSvc.FullName())
}

func registerPersonalFlow(ctx context.Context, reader *bufio.Reader, authSvc *service.AuthService, validator *validation.Validator) {
	form := validation.PersonalSignUpForm{
		FirstName:       prompt(reader, "Nombre: "),
		LastName:        prompt(reader, "Apellido: "),
		Email:           prompt(reader, "Email: "),
		Phone:           prompt(reader, "Telefono (opcional): "),
		Password:        prompt(reader, "Password: "),
		ConfirmPassword: prompt(reader, "Repetir password: "),
	}
	if street := prompt(reader, "Calle de envio (vacio para omitir): "); street != "" {
		form.ShippingStreet = &street
		form.ShippingCity = optional(prompt(reader, "Ciudad: "))
		form.ShippingPostalCode = optional(prompt(reader, "Codigo postal: "))
		form.ShippingCountry = optional(prompt(reader, "Pais: "))
		form.ShippingState = optional(prompt(reader, "Provincia (opcional): "))
	}
	if !valid(validator, &form) {
		return
	}
	printRegister(authSvc.Register(ctx, form.RegisterInput()))
}

func registerBusinessFlow(ctx context.Context, reader *bufio.Reader, authSvc *service.AuthService, validator *validation.Validator) {
	form := validation.BusinessSignUpForm{
		FirstName:       prompt(reader, "Nombre: "),
		LastName:        prompt(reader, "Apellido: "),
		Email:           prompt(reader, "Email: "),
		Phone:           prompt(reader, "Telefono (opcional): "),
		Password:        prompt(reader, "Password: "),
		ConfirmPassword: prompt(reader, "Repetir password: "),
		CompanyName:     prompt(reader, "Empresa: "),
	}
	form.CompanyTaxID = optional(prompt(reader, "NIF / Tax ID (opcional): "))
	form.CompanyAddressStreet = optional(prompt(reader, "Calle (opcional): "))
	form.CompanyAddressCity = optional(prompt(reader, "Ciudad (opcional): "))
	form.CompanyAddressPostalCode = optional(prompt(reader, "Codigo postal (opcional): "))
	form.CompanyAddressCountry = optional(prompt(reader, "Pais (opcional): "))
	form.CompanyAddressState = optional(prompt(reader, "Provincia (opcional): "))
	if !valid(validator, &form) {
		return
	}
	printRegister(authSvc.Register(ctx, form.RegisterInput()))
}

func updateFlow(ctx context.Context, reader *bufio.Reader, authSvc *service.AuthService) {
	if authSvc.User() == nil {
		fmt.Println("Primero inicia sesion.")
		return
	}
	fmt.Println("Deja vacio lo que no quieras cambiar.")
	upd := domain.UserUpdate{
		FirstName: optional(prompt(reader, "Nombre: ")),
		LastName:  optional(prompt(reader, "Apellido: ")),
		Phone:     optional(prompt(reader, "Telefono: ")),
	}
	res := authSvc.UpdateMe(ctx, upd)
	if !res.Success {
		fmt.Printf("Error: %s\n", res.Error)
		return
	}
	printUser(res.Data)
}

func priceFlow(reader *bufio.Reader, formatter *currency.Formatter) {
	amount := prompt(reader, "Importe: ")
	code := prompt(reader, fmt.Sprintf("Moneda (vacio = %s): ", formatter.CurrencyCode()))
	out, err := formatter.FormatDecimal(amount, code)
	if err != nil {
		fmt.Println("Importe invalido.")
		return
	}
	fmt.Println(out)
}

func valid(validator *validation.Validator, form any) bool {
	err := validator.Validate(form)
	if err == nil {
		return true
	}
	var fields validation.FieldErrors
	if errors.As(err, &fields) {
		for field, msg := range fields {
			fmt.Printf("  %s: %s\n", field, msg)
		}
		return false
	}
	fmt.Printf("Error validando: %v\n", err)
	return false
}

func printStatus(ctx context.Context, authSvc *service.AuthService) {
	if !authSvc.IsAuthenticated(ctx) {
		fmt.Println("Sesion: anonima")
		return
	}
	fmt.Printf("Sesion: %s", authSvc.FullName())
	if authSvc.IsAdmin() {
		fmt.Print(" [admin]")
	}
	fmt.Println()
	tok, _ := authSvc.Token(ctx)
	info, err := tokenstore.Inspect(tok)
	switch {
	case errors.Is(err, tokenstore.ErrOpaqueToken):
		fmt.Println("Token opaco, sin fecha de expiracion visible.")
	case err != nil:
		fmt.Printf("No se pudo leer el token: %v\n", err)
	case info.ExpiresAt != nil:
		fmt.Printf("Token expira: %s (expirado: %t)\n", info.ExpiresAt.Local().Format(time.RFC1123), info.Expired(time.Now()))
	}
}

func printUser(u *domain.User) {
	if u == nil {
		fmt.Println("Sin perfil.")
		return
	}
	fmt.Printf("%s <%s> rol=%s verificado=%t\n", u.FullName(), u.Email, u.Role, u.IsVerified)
	if u.IsBusiness() {
		fmt.Printf("Empresa: %s\n", *u.CompanyName)
	}
}

func printRegister(res domain.Result[domain.User]) {
	if !res.Success {
		fmt.Printf("Error: %s\n", res.Error)
		return
	}
	fmt.Println("Cuenta creada. Revisa tu email para verificarla e inicia sesion.")
	printUser(res.Data)
}

func printMessage(res domain.Result[domain.Message]) {
	if !res.Success {
		fmt.Printf("Error: %s\n", res.Error)
		return
	}
	fmt.Println(res.Data.Message)
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	return readLine(reader)
}

func readLine(reader *bufio.Reader) string {
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		os.Exit(0)
	}
	return strings.TrimSpace(line)
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
