package services

import "gorm.io/gorm"

// TxSession - транзакционная сессия поверх одного соединения из пула.
// gorm.DB.Begin забирает соединение из пула, Commit/Rollback возвращают его.
// Дисциплина использования:
//
//	sess, err := BeginSession(db)
//	if err != nil { ... }
//	defer sess.End()
//	... sess.Tx() ...
//	return sess.Commit()
//
// End идемпотентен и откатывает незакоммиченную транзакцию, так что
// соединение возвращается в пул ровно один раз на любом пути выхода,
// включая панику.
type TxSession struct {
	tx    *gorm.DB
	ended bool
}

func BeginSession(db *gorm.DB) (*TxSession, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &TxSession{tx: tx}, nil
}

// Tx возвращает хэндл транзакции для выполнения запросов.
func (s *TxSession) Tx() *gorm.DB {
	return s.tx
}

// Commit фиксирует транзакцию. После Commit сессия закрыта независимо от
// результата: при ошибке фиксации транзакция уже прервана на стороне базы.
func (s *TxSession) Commit() error {
	if s.ended {
		return nil
	}
	s.ended = true
	return s.tx.Commit().Error
}

// End откатывает транзакцию, если Commit не был вызван, и освобождает
// соединение. Повторные вызовы ничего не делают.
func (s *TxSession) End() {
	if s.ended {
		return
	}
	s.ended = true
	s.tx.Rollback()
}
