package config

import (
	"net"

	"github.com/pkg/errors"
	"gitlab.com/distributed_lab/figure/v3"
	"gitlab.com/distributed_lab/kit/comfig"
	"gitlab.com/distributed_lab/kit/kv"
)

type Listenerer interface {
	HttpListener() net.Listener
}

type listenerer struct {
	once   comfig.Once
	getter kv.Getter
}

func NewListenerer(getter kv.Getter) Listenerer {
	return &listenerer{getter: getter}
}

func (l *listenerer) HttpListener() net.Listener {
	return l.once.Do(func() interface{} {
		var cfg struct {
			Addr string `fig:"addr,required"`
		}

		if err := figure.
			Out(&cfg).
			From(kv.MustGetStringMap(l.getter, "listener")).
			Please(); err != nil {
			panic(errors.Wrap(err, "failed to figure out listener config"))
		}

		listener, err := net.Listen("tcp", cfg.Addr)
		if err != nil {
			panic(errors.Wrap(err, "failed to open listener"))
		}

		return listener
	}).(net.Listener)
}
