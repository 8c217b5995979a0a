package jwt

import (
	"errors"
	"time"

	"capstone-showcase/config"

	"github.com/golang-jwt/jwt"
)

var (
	ErrTokenExpired     = errors.New("token expired")
	ErrTokenInvalid     = errors.New("token invalid")
	ErrMalformedSubject = errors.New("token subject malformed")
)

// Payload 令牌携带的用户身份
type Payload struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type Claims struct {
	Payload
	jwt.StandardClaims
}

// issuer 持有签名密钥与有效期
// 密钥在启动时由配置显式注入，不在签发/校验时偷读环境变量
type issuer struct {
	secret []byte
	expire time.Duration
}

var ins *issuer

// Init 注入 JWT 配置，必须在签发或校验令牌之前调用
func Init(cfg config.JWT) {
	ins = &issuer{
		secret: []byte(cfg.AccessSecret),
		expire: time.Duration(cfg.AccessExpire) * time.Second,
	}
}

// CreateToken 为指定用户签发 HS256 令牌
// 令牌在过期前始终有效，没有吊销机制（已知限制）
func CreateToken(p Payload) string {
	now := time.Now()
	claims := Claims{
		Payload: p,
		StandardClaims: jwt.StandardClaims{
			Subject:   p.Email,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(ins.expire).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(ins.secret)
	if err != nil {
		return ""
	}
	return signed
}

// ParseToken 校验签名与有效期
// 过期、签名错误、主体缺失分别返回对应的错误
func ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return ins.secret, nil
	})
	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.Email == "" || claims.UserID == 0 {
		return nil, ErrMalformedSubject
	}
	return claims, nil
}
