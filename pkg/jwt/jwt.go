package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Roles reconocidos en app_metadata.rol.
const (
	RolAdmin       = "admin"
	RolRegistrador = "registrador"
	RolTrabajador  = "trabajador"
)

// AppMetadata metadatos que el proveedor de autenticación adjunta al usuario.
type AppMetadata struct {
	Rol string `json:"rol"`
}

// Claims tokens emitidos por el proveedor de autenticación externo (sub = id de usuario).
type Claims struct {
	jwt.RegisteredClaims
	Email       string      `json:"email"`
	AppMetadata AppMetadata `json:"app_metadata"`
}

// Generate firma un token con el mismo formato que el proveedor. Se usa en tests y scripts locales.
func Generate(secret, userID, email, rol string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Audience:  jwt.ClaimStrings{"authenticated"},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Email:       email,
		AppMetadata: AppMetadata{Rol: rol},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve userID, email y rol.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (userID, email, rol string, err error) {
	if secret == "" {
		return "", "", "", fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", "", "", fmt.Errorf("claims inválidos")
	}
	return claims.Subject, claims.Email, claims.AppMetadata.Rol, nil
}

// audienciaArchivo distingue los enlaces de archivos de los tokens de sesión.
const audienciaArchivo = "archivo"

// FirmarArchivo emite un token de enlace para path válido por ttl.
func FirmarArchivo(secret, path string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   path,
		Audience:  jwt.ClaimStrings{audienciaArchivo},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// VerificarArchivo comprueba firma, vencimiento y que el token sea de path.
func VerificarArchivo(secret, tokenString, path string) error {
	if secret == "" {
		return fmt.Errorf("jwt: secret vacío")
	}
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithAudience(audienciaArchivo), jwt.WithExpirationRequired())
	if err != nil {
		return err
	}
	if claims.Subject != path {
		return fmt.Errorf("jwt: enlace de otro archivo")
	}
	return nil
}
