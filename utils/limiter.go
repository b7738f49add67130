package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Лимит на создание гостевых аккаунтов с одного IP:
// не чаще 1 раза в 60 секунд и не больше 10 в час.

func CanCreateGuest(rdb *redis.Client, ip string) (bool, string) {
	if rdb == nil {
		return true, ""
	}
	ctx := context.Background()
	minuteKey := fmt.Sprintf("guest_minute_%s", ip)
	hourKey := fmt.Sprintf("guest_hour_%s", ip)
	if rdb.Exists(ctx, minuteKey).Val() > 0 {
		return false, "Please wait a minute before creating another guest account"
	}
	cnt, _ := rdb.Get(ctx, hourKey).Int()
	if cnt >= 10 {
		return false, "Too many guest accounts created, try again later"
	}
	return true, ""
}

func MarkGuestCreated(rdb *redis.Client, ip string) {
	if rdb == nil {
		return
	}
	ctx := context.Background()
	minuteKey := fmt.Sprintf("guest_minute_%s", ip)
	hourKey := fmt.Sprintf("guest_hour_%s", ip)
	rdb.Set(ctx, minuteKey, 1, 60*time.Second)
	rdb.Incr(ctx, hourKey)
	rdb.Expire(ctx, hourKey, time.Hour)
}
