// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/emall/internal/product/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// RatingConsumer 消费评价侧的评分聚合事件, 同步到商品表
type RatingConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewRatingConsumer(svc service.Service, q mq.MQ) (*RatingConsumer, error) {
	groupID := "product_rating_group"
	consumer, err := q.Consumer(RatingEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &RatingConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *RatingConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt RatingEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	return c.svc.UpdateRating(ctx, evt.ProductID, evt.AverageRating, evt.TotalReviews)
}

func (c *RatingConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("同步商品评分失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *RatingConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
