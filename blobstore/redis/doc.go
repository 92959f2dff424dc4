// Package redis shares correction artifacts between hosts through Redis.
//
//	client := goredis.NewClient(&goredis.Options{Addr: "cache:6379"})
//	store := redis.NewStore(client, redis.WithPrefix("raptor:"), redis.WithTTL(30*24*time.Hour))
//
// Artifacts are written with SETNX: one command, atomic, and the first
// writer of a key wins.
package redis
