package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/aryawidjaya/gasstation-app/config"
	"github.com/aryawidjaya/gasstation-app/database"
	"github.com/aryawidjaya/gasstation-app/importer"
	"github.com/aryawidjaya/gasstation-app/models"
	"github.com/aryawidjaya/gasstation-app/utils"
)

// Interactive import shell. Every menu item maps onto one coordinator or
// viewer operation; failures print a message and drop back to the menu.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}
	utils.InitLogger()

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to migrate: %v", err)
	}

	coordinator := importer.NewCoordinator(db)
	coordinator.Reader.Codepage = config.ImportCodepage()
	viewer := importer.NewCustomerViewer(db)

	excelPath := config.ExcelPath()
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Println()
		fmt.Println("=== Gas Station Order Import ===")
		fmt.Println("1. Import all orders from Excel")
		fmt.Println("2. View customers by batch number")
		fmt.Println("3. Import a single batch from Excel")
		fmt.Println("4. Exit")
		fmt.Print("Choose an option: ")

		choice, ok := readLine(scanner)
		if !ok {
			return
		}

		switch choice {
		case "1":
			runFullImport(coordinator, excelPath)
		case "2":
			n, ok := promptBatchNumber(scanner)
			if ok {
				showCustomerBatch(viewer, n)
			}
		case "3":
			n, ok := promptBatchNumber(scanner)
			if ok {
				runBatchImport(coordinator, excelPath, n)
			}
		case "4":
			fmt.Println("Bye.")
			return
		default:
			fmt.Println("Unknown option, try again.")
		}
	}
}

func runFullImport(co *importer.Coordinator, path string) {
	sum, err := co.ImportAll(path)
	if err != nil {
		fmt.Printf("Import failed: %v\n", err)
		return
	}
	fmt.Printf("Import finished: %d orders inserted, %d new customers.\n",
		sum.OrdersInserted, sum.NewCustomers)
}

func runBatchImport(co *importer.Coordinator, path string, batchNumber int) {
	result, err := co.ImportBatch(path, batchNumber)
	if err != nil {
		fmt.Printf("Batch import failed: %v\n", err)
		return
	}
	fmt.Printf("Batch %d finished: %d orders inserted, %d new customers.\n",
		batchNumber, result.OrdersInserted, result.NewCustomers)
	printCustomers(result.Customers)
}

func showCustomerBatch(viewer *importer.CustomerViewer, batchNumber int) {
	customers, err := viewer.ListBatch(batchNumber)
	if err != nil {
		fmt.Printf("Cannot list batch %d: %v\n", batchNumber, err)
		return
	}
	printCustomers(customers)
}

func printCustomers(customers []models.Customer) {
	if len(customers) == 0 {
		fmt.Println("No customers in this batch.")
		return
	}
	for _, cust := range customers {
		fmt.Printf("%5d | %-25s | %-15s | %-25s | %s\n",
			cust.ID, cust.FullName, cust.PhoneNumber, cust.Email, cust.VehicleNumber)
	}
	fmt.Printf("%d customer(s) listed.\n", len(customers))
}

func promptBatchNumber(scanner *bufio.Scanner) (int, bool) {
	fmt.Print("Batch number: ")
	line, ok := readLine(scanner)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		fmt.Println("Batch number must be an integer.")
		return 0, false
	}
	return n, true
}

func readLine(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}
