package models

import "time"

// Customer is a person we sell to. One account, many orders.
type Customer struct {
	CustomerID int    `json:"customer_id" gorm:"column:customer_id;primaryKey;autoIncrement"`
	Name       string `json:"name" gorm:"column:name;size:255"`
	Email      string `json:"email" gorm:"column:email;size:320"`
	Phone      string `json:"phone" gorm:"column:phone;size:15"`

	Account *CustomerAccount `json:"account,omitempty" gorm:"foreignKey:CustomerID"`
	Orders  []Order          `json:"orders,omitempty" gorm:"foreignKey:CustomerID"`
}

func (Customer) TableName() string { return "Customers" }

// CustomerAccount carries the login credentials for a customer.
type CustomerAccount struct {
	AccountID  int    `json:"account_id" gorm:"column:account_id;primaryKey;autoIncrement"`
	Username   string `json:"username" gorm:"column:username;size:255;uniqueIndex;not null"`
	Password   string `json:"password" gorm:"column:password;size:255;not null"`
	CustomerID int    `json:"customer_id" gorm:"column:customer_id"`
}

func (CustomerAccount) TableName() string { return "Customer_Accounts" }

type Product struct {
	ProductID int     `json:"product_id" gorm:"column:product_id;primaryKey;autoIncrement"`
	Name      string  `json:"name" gorm:"column:name;size:255;not null"`
	Price     float64 `json:"price" gorm:"column:price;not null"`
}

func (Product) TableName() string { return "Products" }

type Order struct {
	OrderID    int       `json:"order_id" gorm:"column:order_id;primaryKey;autoIncrement"`
	Date       time.Time `json:"date" gorm:"column:date;type:date;not null"`
	CustomerID int       `json:"customer_id" gorm:"column:customer_id"`
}

func (Order) TableName() string { return "Orders" }

// OrderProduct is the explicit join entity linking orders to products.
// Composite primary key, one row per (order, product) pair.
type OrderProduct struct {
	OrderID   int `json:"order_id" gorm:"column:order_id;primaryKey"`
	ProductID int `json:"product_id" gorm:"column:product_id;primaryKey"`
}

func (OrderProduct) TableName() string { return "Order_Product" }
